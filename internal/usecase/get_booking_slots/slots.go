package get_booking_slots

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// buildSlots строит упорядоченный список слотов из универсума 00:00..23:30
// с шагом 30 минут. Если расписание задает часы работы - окно [открытие, закрытие),
// закрытие не включается. Без часов работы показываем дефолтное окно 09:00-20:00.
func buildSlots(schedule domain.OperatingSchedule) []domain.Slot {
	var openTime, closeTime types.TimeString
	if schedule.HasTimeBounds() {
		openTime = schedule.OpeningTime()
		closeTime = schedule.ClosingTime()
	} else {
		openTime = domain.DefaultDisplayOpenTime
		closeTime = domain.DefaultDisplayCloseTime
	}

	universe := domain.SlotUniverse()
	slots := make([]domain.Slot, 0, len(universe))

	for _, value := range universe {
		if value.IsBefore(openTime) {
			continue
		}
		// Полуоткрытый интервал: слот на времени закрытия не предлагается
		if !value.IsBefore(closeTime) {
			continue
		}
		slots = append(slots, domain.NewSlot(value))
	}

	return slots
}
