package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/integrations/salonservice"
)

// SalonServiceClient интерфейс клиента для SalonService
type SalonServiceClient interface {
	GetSchedule(ctx context.Context) (*salonservice.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
