package drafts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
)

// DraftStore интерфейс хранилища сессий черновиков
type DraftStore interface {
	Save(ctx context.Context, draft *domain.BookingDraft) error
	Get(ctx context.Context, draftID string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, draftID string) error
}

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetCustomer(ctx context.Context, customerID string) (*salonservice.Customer, error)
}

// CatalogService интерфейс каталога позиций
type CatalogService interface {
	ListServices(ctx context.Context) []domain.BookableItem
	ListCombosForDate(ctx context.Context, date time.Time) []domain.BookableItem
	ListForDate(ctx context.Context, date time.Time) []domain.BookableItem
}

// ScheduleService интерфейс загрузчика расписания салона
type ScheduleService interface {
	Load(ctx context.Context) domain.OperatingSchedule
}

// Metrics интерфейс метрик жизненного цикла черновиков
type Metrics interface {
	DraftCreated()
	DraftClosed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
