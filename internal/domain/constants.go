package domain

import "github.com/m04kA/SMC-SalonBooking/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot generation constants
const (
	// SlotStepMinutes шаг сетки слотов в течение дня
	SlotStepMinutes = 30

	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60
)

// Окно показа слотов по умолчанию, когда у салона не настроены часы работы.
// Это UX-ограничение (не показывать бессмысленный список на все сутки),
// а не правило корректности.
const (
	DefaultDisplayOpenTime  = types.TimeString("09:00")
	DefaultDisplayCloseTime = types.TimeString("20:00")
)
