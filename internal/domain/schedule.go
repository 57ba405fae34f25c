package domain

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// OperatingSchedule represents the salon's configured working days and daily hours.
// The zero value is a fully unconstrained schedule (any day, any time).
//
// Construction is soft: missing or invalid fields disable the corresponding
// constraint instead of failing, so an incompletely configured salon stays bookable.
type OperatingSchedule struct {
	workingDays map[time.Weekday]struct{}
	openingTime types.TimeString
	closingTime types.TimeString
}

// NewOperatingSchedule builds a schedule from raw profile data.
// workingDays uses weekday indices 0=Sunday..6=Saturday.
//
// Возвращает также список предупреждений о проигнорированных полях
// (некорректный формат времени, openingTime >= closingTime, неизвестный день недели) -
// вызывающая сторона обязана их залогировать.
func NewOperatingSchedule(workingDays []int, openingTime, closingTime string) (OperatingSchedule, []string) {
	var warnings []string
	s := OperatingSchedule{}

	if len(workingDays) > 0 {
		days := make(map[time.Weekday]struct{}, len(workingDays))
		for _, d := range workingDays {
			if d < 0 || d > 6 {
				warnings = append(warnings, fmt.Sprintf("ignoring unknown weekday index %d", d))
				continue
			}
			days[time.Weekday(d)] = struct{}{}
		}
		if len(days) > 0 {
			s.workingDays = days
		}
	}

	open, openErr := parseOptionalTime(openingTime)
	if openErr != nil {
		warnings = append(warnings, fmt.Sprintf("ignoring opening time: %v", openErr))
	}

	closeT, closeErr := parseOptionalTime(closingTime)
	if closeErr != nil {
		warnings = append(warnings, fmt.Sprintf("ignoring closing time: %v", closeErr))
	}

	// Ограничение по времени действует только при полной и осмысленной паре границ.
	// openingTime >= closingTime - misconfiguration: работаем без ограничения по времени.
	if !open.IsZero() && !closeT.IsZero() {
		if open.IsBefore(closeT) {
			s.openingTime = open
			s.closingTime = closeT
		} else {
			warnings = append(warnings,
				fmt.Sprintf("opening time %s is not before closing time %s, time bounds disabled", open, closeT))
		}
	}

	return s, warnings
}

func parseOptionalTime(s string) (types.TimeString, error) {
	if s == "" {
		return "", nil
	}
	return types.NewTimeStringFromString(s)
}

// HasDayRestriction возвращает true, если задан список рабочих дней
func (s OperatingSchedule) HasDayRestriction() bool {
	return len(s.workingDays) > 0
}

// HasTimeBounds возвращает true, если заданы корректные часы работы
func (s OperatingSchedule) HasTimeBounds() bool {
	return !s.openingTime.IsZero() && !s.closingTime.IsZero()
}

// IsWorkingDay возвращает true, если салон работает в день недели указанной даты
// (или если список рабочих дней не задан)
func (s OperatingSchedule) IsWorkingDay(date time.Time) bool {
	if !s.HasDayRestriction() {
		return true
	}
	_, ok := s.workingDays[date.Weekday()]
	return ok
}

// IsWithinHours проверяет время по полуинтервалу [openingTime, closingTime).
// Слот ровно во время закрытия недопустим: до закрытия не остается времени
// даже на нулевую по длительности услугу.
func (s OperatingSchedule) IsWithinHours(t types.TimeString) bool {
	if !s.HasTimeBounds() {
		return true
	}
	return !t.IsBefore(s.openingTime) && t.IsBefore(s.closingTime)
}

// OpeningTime возвращает время открытия (пустое значение, если часы не заданы)
func (s OperatingSchedule) OpeningTime() types.TimeString {
	return s.openingTime
}

// ClosingTime возвращает время закрытия (пустое значение, если часы не заданы)
func (s OperatingSchedule) ClosingTime() types.TimeString {
	return s.closingTime
}

// WorkingDays возвращает отсортированный список рабочих дней недели
func (s OperatingSchedule) WorkingDays() []time.Weekday {
	days := make([]time.Weekday, 0, len(s.workingDays))
	for d := range s.workingDays {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}
