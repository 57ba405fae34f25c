package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestNewOperatingSchedule(t *testing.T) {
	t.Run("full configuration", func(t *testing.T) {
		s, warnings := NewOperatingSchedule([]int{1, 2, 3, 4, 5}, "10:00", "20:00")

		assert.Empty(t, warnings)
		assert.True(t, s.HasDayRestriction())
		assert.True(t, s.HasTimeBounds())
		assert.Equal(t, types.TimeString("10:00"), s.OpeningTime())
		assert.Equal(t, types.TimeString("20:00"), s.ClosingTime())
		assert.Equal(t, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}, s.WorkingDays())
	})

	t.Run("empty fields mean unconstrained", func(t *testing.T) {
		s, warnings := NewOperatingSchedule(nil, "", "")

		assert.Empty(t, warnings)
		assert.False(t, s.HasDayRestriction())
		assert.False(t, s.HasTimeBounds())
		assert.True(t, s.IsWorkingDay(time.Now()))
		assert.True(t, s.IsWithinHours("03:00"))
	})

	t.Run("invalid time disables bounds with warning", func(t *testing.T) {
		s, warnings := NewOperatingSchedule(nil, "ten o'clock", "20:00")

		require.Len(t, warnings, 1)
		assert.False(t, s.HasTimeBounds())
	})

	t.Run("opening after closing disables bounds with warning", func(t *testing.T) {
		s, warnings := NewOperatingSchedule(nil, "20:00", "10:00")

		require.Len(t, warnings, 1)
		assert.False(t, s.HasTimeBounds())
		assert.True(t, s.IsWithinHours("23:00"))
	})

	t.Run("opening equals closing disables bounds", func(t *testing.T) {
		s, warnings := NewOperatingSchedule(nil, "10:00", "10:00")

		require.Len(t, warnings, 1)
		assert.False(t, s.HasTimeBounds())
	})

	t.Run("only one bound disables bounds silently", func(t *testing.T) {
		s, warnings := NewOperatingSchedule(nil, "10:00", "")

		assert.Empty(t, warnings)
		assert.False(t, s.HasTimeBounds())
	})

	t.Run("unknown weekday index skipped with warning", func(t *testing.T) {
		s, warnings := NewOperatingSchedule([]int{1, 7, -1}, "", "")

		assert.Len(t, warnings, 2)
		assert.True(t, s.HasDayRestriction())
		assert.Equal(t, []time.Weekday{time.Monday}, s.WorkingDays())
	})

	t.Run("half hour boundaries are supported", func(t *testing.T) {
		s, warnings := NewOperatingSchedule(nil, "09:30", "18:30")

		assert.Empty(t, warnings)
		assert.True(t, s.IsWithinHours("09:30"))
		assert.False(t, s.IsWithinHours("09:00"))
		assert.False(t, s.IsWithinHours("18:30"))
	})
}

func TestOperatingSchedule_IsWithinHours(t *testing.T) {
	s, _ := NewOperatingSchedule(nil, "10:00", "20:00")

	tests := []struct {
		time types.TimeString
		want bool
	}{
		{"09:59", false},
		{"10:00", true}, // включительная нижняя граница
		{"15:30", true},
		{"19:59", true},
		{"20:00", false}, // исключительная верхняя граница
		{"23:00", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.IsWithinHours(tt.time), "time %s", tt.time)
	}
}

func TestOperatingSchedule_IsWorkingDay(t *testing.T) {
	s, _ := NewOperatingSchedule([]int{1, 2, 3, 4, 5}, "10:00", "20:00")

	sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
	tuesday := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	assert.False(t, s.IsWorkingDay(sunday))
	assert.True(t, s.IsWorkingDay(tuesday))
	assert.False(t, s.IsWorkingDay(saturday))
}
