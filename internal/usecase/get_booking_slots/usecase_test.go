package get_booking_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubSchedule struct {
	schedule domain.OperatingSchedule
}

func (s *stubSchedule) Load(ctx context.Context) domain.OperatingSchedule {
	return s.schedule
}

func mustSchedule(t *testing.T, days []int, open, close string) domain.OperatingSchedule {
	t.Helper()
	schedule, warnings := domain.NewOperatingSchedule(days, open, close)
	require.Empty(t, warnings)
	return schedule
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("slots within working hours, closing excluded", func(t *testing.T) {
		uc := NewUseCase(&stubSchedule{schedule: mustSchedule(t, []int{1, 2, 3, 4, 5}, "10:00", "13:00")}, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 6)
		assert.Equal(t, "10:00", resp.Slots[0].Value.String())
		assert.Equal(t, "10:00 AM", resp.Slots[0].Label)
		assert.Equal(t, "12:30", resp.Slots[5].Value.String())
		assert.Equal(t, "12:30 PM", resp.Slots[5].Label)
	})

	t.Run("default window without time bounds", func(t *testing.T) {
		uc := NewUseCase(&stubSchedule{schedule: domain.OperatingSchedule{}}, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 22)
		assert.Equal(t, "09:00", resp.Slots[0].Value.String())
		assert.Equal(t, "19:30", resp.Slots[21].Value.String())
		assert.Nil(t, resp.WorkingDay)
	})

	t.Run("half-hour opening boundary", func(t *testing.T) {
		uc := NewUseCase(&stubSchedule{schedule: mustSchedule(t, nil, "09:30", "11:00")}, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{})
		require.NoError(t, err)

		require.Len(t, resp.Slots, 3)
		assert.Equal(t, "09:30", resp.Slots[0].Value.String())
		assert.Equal(t, "10:30", resp.Slots[2].Value.String())
	})

	t.Run("reports non-working day", func(t *testing.T) {
		uc := NewUseCase(&stubSchedule{schedule: mustSchedule(t, []int{1, 2, 3, 4, 5}, "09:00", "20:00")}, nopLogger{})

		sunday := time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Execute(ctx, &Request{Date: &sunday})
		require.NoError(t, err)

		require.NotNil(t, resp.WorkingDay)
		assert.False(t, *resp.WorkingDay)
		assert.NotEmpty(t, resp.Slots)
	})
}
