package get_booking_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// UseCase use case для получения слотов выбора времени записи
type UseCase struct {
	schedule ScheduleService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule ScheduleService, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		logger:   logger,
	}
}

// Execute выполняет use case получения слотов времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Загружаем расписание салона (мемоизировано, деградирует до
	// неограниченного при недоступности источника)
	schedule := uc.schedule.Load(ctx)

	// 2. Строим слоты по окну работы
	slots := buildSlots(schedule)

	resp := &Response{
		Date:  req.Date,
		Slots: slots,
	}

	// 3. Если передана дата - сообщаем, рабочий ли это день
	if req.Date != nil {
		resp.WorkingDay = ptr.Ptr(schedule.IsWorkingDay(*req.Date))
		uc.logger.Info("GetBookingSlots: generated %d slots for date=%s",
			len(slots), req.Date.Format(domain.DateFormat))
	} else {
		uc.logger.Info("GetBookingSlots: generated %d slots", len(slots))
	}

	return resp, nil
}
