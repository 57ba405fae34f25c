package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTimeStringFrom12Hour(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "midnight", input: "12:00 AM", want: "00:00"},
		{name: "early morning", input: "01:00 AM", want: "01:00"},
		{name: "late morning", input: "11:00 AM", want: "11:00"},
		{name: "noon", input: "12:00 PM", want: "12:00"},
		{name: "afternoon", input: "01:00 PM", want: "13:00"},
		{name: "evening", input: "11:00 PM", want: "23:00"},
		{name: "half hour", input: "09:30 PM", want: "21:30"},
		{name: "lowercase meridiem", input: "08:00 am", want: "08:00"},
		{name: "no meridiem", input: "09:00", wantErr: true},
		{name: "hour zero", input: "00:30 AM", wantErr: true},
		{name: "hour thirteen", input: "13:00 PM", wantErr: true},
		{name: "bad meridiem", input: "09:00 XM", wantErr: true},
		{name: "bad minutes", input: "09:5 PM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFrom12Hour(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid12HourTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Все двенадцать отображаемых часов конвертируются корректно в обе стороны суток
func TestNewTimeStringFrom12Hour_AllHours(t *testing.T) {
	wantAM := []TimeString{"00:00", "01:00", "02:00", "03:00", "04:00", "05:00",
		"06:00", "07:00", "08:00", "09:00", "10:00", "11:00"}
	wantPM := []TimeString{"12:00", "13:00", "14:00", "15:00", "16:00", "17:00",
		"18:00", "19:00", "20:00", "21:00", "22:00", "23:00"}

	hours := []string{"12", "01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11"}

	for i, h := range hours {
		am, err := NewTimeStringFrom12Hour(h + ":00 AM")
		require.NoError(t, err)
		assert.Equal(t, wantAM[i], am)

		pm, err := NewTimeStringFrom12Hour(h + ":00 PM")
		require.NoError(t, err)
		assert.Equal(t, wantPM[i], pm)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		minutes int
		want    TimeString
		wantErr bool
	}{
		{name: "add half hour", start: "10:00", minutes: 30, want: "10:30"},
		{name: "cross hour", start: "10:45", minutes: 30, want: "11:15"},
		{name: "subtract", start: "10:00", minutes: -15, want: "09:45"},
		{name: "overflow past midnight", start: "23:45", minutes: 30, wantErr: true},
		{name: "underflow", start: "00:10", minutes: -20, wantErr: true},
		{name: "invalid base", start: "xx:yy", minutes: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.minutes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("20:00").IsAfter("19:59"))
	assert.False(t, TimeString("20:00").IsAfter("20:00"))
}

func TestTimeString_MinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, TimeString("00:00").MinutesOfDay())
	assert.Equal(t, 9*60+30, TimeString("09:30").MinutesOfDay())
	assert.Equal(t, 23*60+59, TimeString("23:59").MinutesOfDay())
	assert.Equal(t, -1, TimeString("bad").MinutesOfDay())
}

func TestNewTimeString(t *testing.T) {
	moment := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	assert.Equal(t, TimeString("15:09"), NewTimeString(moment))
}
