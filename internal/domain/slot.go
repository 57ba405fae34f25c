package domain

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Slot represents a discrete offerable time-of-day value for booking
type Slot struct {
	Value types.TimeString // машинное значение "HH:MM"
	Label string           // отображаемое значение "9:00 AM"
}

// NewSlot создает слот с отображаемой 12-часовой меткой
func NewSlot(t types.TimeString) Slot {
	return Slot{
		Value: t,
		Label: t.To12Hour(),
	}
}

// SlotUniverse возвращает полную сетку слотов на сутки (00:00 .. 23:30)
// с шагом SlotStepMinutes
func SlotUniverse() []types.TimeString {
	universe := make([]types.TimeString, 0, MinutesPerDay/SlotStepMinutes)
	for m := 0; m < MinutesPerDay; m += SlotStepMinutes {
		universe = append(universe, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return universe
}
