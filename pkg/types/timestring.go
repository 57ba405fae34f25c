package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString время суток в 24-часовом формате "HH:MM"
type TimeString string

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

	// ErrInvalid12HourTime возвращается при некорректном 12-часовом формате времени
	ErrInvalid12HourTime = errors.New("types: invalid 12-hour time, expected HH:MM AM|PM")

	// ErrTimeOutOfRange возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of day range")
)

// NewTimeString создает TimeString из time.Time (отбрасывает дату и секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFrom12Hour конвертирует 12-часовое отображаемое время ("09:00 AM", "01:30 PM")
// в 24-часовой TimeString.
//
// Правила конвертации:
// - 12 AM -> 00
// - 1-11 AM -> без изменений
// - 12 PM -> 12
// - 1-11 PM -> +12
func NewTimeStringFrom12Hour(s string) (TimeString, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalid12HourTime, s)
	}

	meridiem := strings.ToUpper(fields[1])
	if meridiem != "AM" && meridiem != "PM" {
		return "", fmt.Errorf("%w: unknown meridiem %q", ErrInvalid12HourTime, fields[1])
	}

	parts := strings.Split(fields[0], ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("%w: %q", ErrInvalid12HourTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 1 || hour > 12 {
		return "", fmt.Errorf("%w: hour %q", ErrInvalid12HourTime, parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || len(parts[1]) != 2 {
		return "", fmt.Errorf("%w: minute %q", ErrInvalid12HourTime, parts[1])
	}

	if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	if meridiem == "PM" && hour != 12 {
		hour += 12
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != len(timeLayout) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	if _, err := time.Parse(timeLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// MinutesOfDay возвращает количество минут от начала суток.
// Для некорректного значения возвращает -1.
func (t TimeString) MinutesOfDay() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// AddMinutes возвращает время, сдвинутое на minutes минут вперед (или назад при отрицательном значении)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.MinutesOfDay() + minutes
	if total < 0 || total > 23*60+59 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// To12Hour возвращает отображаемое 12-часовое представление ("09:00" -> "9:00 AM").
// Для некорректного значения возвращает исходную строку.
func (t TimeString) To12Hour() string {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return string(t)
	}
	return parsed.Format("3:04 PM")
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.MinutesOfDay() < other.MinutesOfDay()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.MinutesOfDay() > other.MinutesOfDay()
}
