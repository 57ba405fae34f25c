package domain

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	// ErrClosedOnDay возвращается, когда салон закрыт в день недели выбранной даты
	ErrClosedOnDay = errors.New("domain: salon is closed on this day")

	// ErrClosedAtTime возвращается, когда выбранное время вне часов работы салона
	ErrClosedAtTime = errors.New("domain: salon is closed at this time")
)

// Availability результат проверки пары (дата, время) по расписанию салона.
// Проверки дня и времени независимы: черновик может одновременно держать
// обе ошибки, и UI показывает их по отдельности, а не одним флагом.
type Availability struct {
	DayError  error
	TimeError error
}

// OK возвращает true, когда обе проверки прошли
func (a Availability) OK() bool {
	return a.DayError == nil && a.TimeError == nil
}

// CheckDay проверяет дату по списку рабочих дней.
// Нулевая дата еще не выбрана - проверять нечего.
func CheckDay(schedule OperatingSchedule, date time.Time) error {
	if date.IsZero() {
		return nil
	}
	if !schedule.IsWorkingDay(date) {
		return ErrClosedOnDay
	}
	return nil
}

// CheckTime проверяет время по часам работы (полуинтервал [open, close)).
// Пустое время еще не выбрано - проверять нечего.
func CheckTime(schedule OperatingSchedule, t types.TimeString) error {
	if t.IsZero() {
		return nil
	}
	if !schedule.IsWithinHours(t) {
		return ErrClosedAtTime
	}
	return nil
}

// CheckAvailability выполняет обе независимые проверки
func CheckAvailability(schedule OperatingSchedule, date time.Time, t types.TimeString) Availability {
	return Availability{
		DayError:  CheckDay(schedule, date),
		TimeError: CheckTime(schedule, t),
	}
}
