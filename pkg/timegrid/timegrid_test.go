package timegrid

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(h, m, s int) time.Time {
	return time.Date(2026, 10, 16, h, m, s, 0, time.UTC)
}

func TestQuantizeUp(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		step time.Duration
		want time.Time
	}{
		{"aligned stays", utc(9, 30, 0), 15 * time.Minute, utc(9, 30, 0)},
		{"one second past", utc(9, 30, 1), 15 * time.Minute, utc(9, 45, 0)},
		{"mid step", utc(9, 37, 0), 15 * time.Minute, utc(9, 45, 0)},
		{"rolls into next hour", utc(9, 46, 0), 15 * time.Minute, utc(10, 0, 0)},
		{"sub-second remainder", utc(9, 30, 0).Add(time.Millisecond), 15 * time.Minute, utc(9, 45, 0)},
		{"top of hour", utc(10, 0, 0), 15 * time.Minute, utc(10, 0, 0)},
		{"step 10", utc(9, 31, 0), 10 * time.Minute, utc(9, 40, 0)},
		{"zero step uses default", utc(9, 1, 0), 0, utc(9, 15, 0)},
		{"crosses midnight", utc(23, 50, 0), 15 * time.Minute, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuantizeUp(tt.in, tt.step)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestQuantizeUp_NonUTCInputMeasuredFromUTCHour(t *testing.T) {
	// +05:30 сдвигает локальные минуты относительно UTC
	zone := time.FixedZone("IST", 5*3600+30*60)
	in := time.Date(2026, 10, 16, 15, 7, 0, 0, zone) // 09:37 UTC

	got := QuantizeUp(in, 15*time.Minute)

	assert.True(t, utc(9, 45, 0).Equal(got), "got %s", got)
}

// Свойства: идемпотентность, монотонность и зазор меньше шага
func TestQuantizeUp_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	steps := []time.Duration{5 * time.Minute, 10 * time.Minute, 15 * time.Minute, 20 * time.Minute, 30 * time.Minute, time.Hour}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for trial := 0; trial < 500; trial++ {
		step := steps[rng.Intn(len(steps))]
		in := base.Add(time.Duration(rng.Int63n(int64(365 * 24 * time.Hour))))

		q := QuantizeUp(in, step)

		assert.True(t, q.Equal(QuantizeUp(q, step)),
			"trial %d: quantize must be idempotent for %s step %s", trial, in, step)
		assert.False(t, q.Before(in),
			"trial %d: quantized %s must not precede %s", trial, q, in)
		assert.Less(t, q.Sub(in), step,
			"trial %d: gap must be less than one step", trial)
		assert.True(t, IsAligned(q, step), "trial %d: result must be aligned", trial)
	}
}

func TestValidateStep(t *testing.T) {
	assert.NoError(t, ValidateStep(15*time.Minute))
	assert.NoError(t, ValidateStep(time.Hour))
	assert.ErrorIs(t, ValidateStep(0), ErrInvalidStep)
	assert.ErrorIs(t, ValidateStep(25*time.Minute), ErrInvalidStep)
	assert.ErrorIs(t, ValidateStep(90*time.Second), ErrInvalidStep)
}

func TestIsRequestedDateToday_UsesZone(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*3600)
	// 22:30 UTC 16-го = 01:30 17-го в UTC+3
	now := time.Date(2026, 10, 16, 22, 30, 0, 0, time.UTC)

	assert.True(t, IsRequestedDateToday(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), now, zone))
	assert.False(t, IsRequestedDateToday(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), now, zone))
	assert.True(t, IsRequestedDateToday(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), now, time.UTC))
}

func TestIsRequestedDateInPastAndDaysAhead(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsRequestedDateInPast(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), now, time.UTC))
	assert.False(t, IsRequestedDateInPast(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), now, time.UTC))
	assert.Equal(t, 0, DaysAhead(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), now, time.UTC))
	assert.Equal(t, 30, DaysAhead(time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC), now, time.UTC))
}

func TestEarliestAllowedStart(t *testing.T) {
	now := time.Date(2026, 10, 16, 13, 47, 12, 0, time.UTC)
	today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("today rounds up now", func(t *testing.T) {
		got, ok := EarliestAllowedStart(today, now, time.UTC, 0, 15*time.Minute)
		require.True(t, ok)
		assert.True(t, utc(14, 0, 0).Equal(got), "got %s", got)
	})

	t.Run("today with notice", func(t *testing.T) {
		got, ok := EarliestAllowedStart(today, now, time.UTC, time.Hour, 15*time.Minute)
		require.True(t, ok)
		assert.True(t, utc(15, 0, 0).Equal(got), "got %s", got)
	})

	t.Run("other day has no floor", func(t *testing.T) {
		_, ok := EarliestAllowedStart(tomorrow, now, time.UTC, 0, 15*time.Minute)
		assert.False(t, ok)
	})
}

func TestLocalProjection(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*3600)

	assert.Equal(t, "12:15", LocalLabel(utc(9, 15, 0), zone))
	assert.Equal(t, zone, ToLocal(utc(9, 15, 0), zone).Location())
}

func TestSlotsToCover(t *testing.T) {
	step := 15 * time.Minute
	assert.Equal(t, 0, SlotsToCover(0, step))
	assert.Equal(t, 1, SlotsToCover(10*time.Minute, step))
	assert.Equal(t, 2, SlotsToCover(30*time.Minute, step))
	assert.Equal(t, 3, SlotsToCover(45*time.Minute, step))
	assert.Equal(t, 4, SlotsToCover(50*time.Minute, step))
}

func TestInstantSet_DropsUnalignedInstants(t *testing.T) {
	set := NewInstantSet([]time.Time{
		utc(9, 0, 0),
		utc(9, 7, 0),
		utc(9, 15, 0).In(time.FixedZone("X", 3600)),
		utc(9, 30, 30),
	}, 15*time.Minute)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(utc(9, 0, 0)))
	assert.True(t, set.Has(utc(9, 15, 0)))
	assert.False(t, set.Has(utc(9, 7, 0)))
	assert.False(t, set.Has(utc(9, 30, 0)))
}

func TestInstantSet_UnionAndSorted(t *testing.T) {
	a := NewInstantSet([]time.Time{utc(10, 0, 0), utc(9, 0, 0)}, 15*time.Minute)
	b := NewInstantSet([]time.Time{utc(9, 30, 0), utc(9, 0, 0)}, 15*time.Minute)

	a.Union(b)
	sorted := a.Sorted()

	require.Len(t, sorted, 3)
	assert.True(t, utc(9, 0, 0).Equal(sorted[0]))
	assert.True(t, utc(9, 30, 0).Equal(sorted[1]))
	assert.True(t, utc(10, 0, 0).Equal(sorted[2]))
}
