package get_booking_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ScheduleService интерфейс загрузчика расписания салона
type ScheduleService interface {
	Load(ctx context.Context) domain.OperatingSchedule
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
