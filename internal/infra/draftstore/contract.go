package draftstore

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Store хранилище сессий черновиков бронирования.
// Черновик - единственное состояние, которым владеет сервис; живет с TTL
// и удаляется при отправке или отмене. Никакой долговременной персистентности.
type Store interface {
	Save(ctx context.Context, draft *domain.BookingDraft) error
	Get(ctx context.Context, draftID string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, draftID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
