package submit_booking

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// validateDraft терминальная проверка черновика перед отправкой.
// Сначала полнота, затем обе проверки доступности по свежему снимку
// расписания. Любой отказ - без сетевого вызова к AppointmentService.
func validateDraft(draft *domain.BookingDraft, schedule domain.OperatingSchedule) error {
	if !draft.IsComplete() {
		return ErrDraftIncomplete
	}

	if err := domain.CheckDay(schedule, draft.Date); err != nil {
		return ErrClosedOnDay
	}

	if err := domain.CheckTime(schedule, draft.Time); err != nil {
		return ErrClosedAtTime
	}

	return nil
}
