package catalog

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
)

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	ListServices(ctx context.Context) ([]salonservice.Service, error)
	ListActiveCombos(ctx context.Context, date time.Time) ([]salonservice.Combo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
