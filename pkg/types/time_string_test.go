package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	_, err := NewTimeStringFromString("09:30")
	assert.NoError(t, err)

	_, err = NewTimeStringFromString("9h30")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)

	_, err = NewTimeStringFromString("24:00")
	assert.NoError(t, err)

	_, err = NewTimeStringFromString("24:15")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	got, err = TimeString("23:30").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, EndOfDay, got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:15"))
	assert.False(t, TimeString("09:15").IsBefore("09:15"))
	assert.True(t, TimeString("18:00").IsAfter("09:15"))
	assert.True(t, TimeString("23:59").IsBefore(EndOfDay))
	assert.False(t, TimeString("bad").IsAfter("09:15"))
}

func TestTimeString_OnDate(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*3600)
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("09:30").OnDate(date, zone)
	require.NoError(t, err)

	assert.True(t, time.Date(2026, 10, 16, 6, 30, 0, 0, time.UTC).Equal(got))
	assert.Equal(t, TimeString("09:30"), NewTimeString(got))
}

func TestTimeString_EndOfDayOnDate(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*3600)
	date := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	minutes, err := EndOfDay.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 1440, minutes)

	got, err := EndOfDay.OnDate(date, zone)
	require.NoError(t, err)
	assert.True(t, time.Date(2027, 1, 1, 0, 0, 0, 0, zone).Equal(got), "next local midnight")
	assert.True(t, time.Date(2026, 12, 31, 21, 0, 0, 0, time.UTC).Equal(got))
}
