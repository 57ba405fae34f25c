package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/appointmentservice"
)

// DraftStore интерфейс хранилища сессий черновиков
type DraftStore interface {
	Get(ctx context.Context, draftID string) (*domain.BookingDraft, error)
	Delete(ctx context.Context, draftID string) error
}

// ScheduleService интерфейс загрузчика расписания салона
type ScheduleService interface {
	Load(ctx context.Context) domain.OperatingSchedule
}

// AppointmentServiceClient интерфейс клиента для AppointmentService
type AppointmentServiceClient interface {
	CreateAppointment(ctx context.Context, req *appointmentservice.CreateAppointmentRequest) (*appointmentservice.Appointment, error)
}

// Metrics интерфейс метрик отправки записей
type Metrics interface {
	DraftSubmission(outcome string)
	DraftClosed()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
