package get_catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// CatalogService интерфейс каталога позиций
type CatalogService interface {
	ListServices(ctx context.Context) []domain.BookableItem
	ListForDate(ctx context.Context, date time.Time) []domain.BookableItem
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
