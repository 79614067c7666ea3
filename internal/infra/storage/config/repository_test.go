package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ChainBookingService/internal/infra/storage/storagetest"
)

const schema = `
CREATE TABLE location_slots_config (
	id                         INTEGER PRIMARY KEY,
	location_id                INTEGER UNIQUE,
	step_minutes               INTEGER NOT NULL,
	min_booking_notice_minutes INTEGER NOT NULL,
	advance_booking_days       INTEGER NOT NULL,
	time_zone                  TEXT NOT NULL,
	created_at                 TIMESTAMP,
	updated_at                 TIMESTAMP
);
`

func TestRepository_GetConfigWithHierarchy(t *testing.T) {
	ctx := context.Background()

	t.Run("location config wins over global", func(t *testing.T) {
		db := storagetest.OpenSQLite(t, schema+`
			INSERT INTO location_slots_config (id, location_id, step_minutes, min_booking_notice_minutes, advance_booking_days, time_zone)
			VALUES (1, NULL, 15, 0, 0, 'UTC'), (2, 10, 30, 60, 14, 'Europe/Moscow');`)
		repo := NewRepository(db)

		config, err := repo.GetConfigWithHierarchy(ctx, 10)
		require.NoError(t, err)
		require.NotNil(t, config.LocationID)
		assert.Equal(t, int64(10), *config.LocationID)
		assert.Equal(t, 30, config.StepMinutes)
		assert.Equal(t, 60, config.MinBookingNoticeMinutes)
		assert.Equal(t, 14, config.AdvanceBookingDays)
		assert.Equal(t, "Europe/Moscow", config.TimeZone)
	})

	t.Run("falls back to global", func(t *testing.T) {
		db := storagetest.OpenSQLite(t, schema+`
			INSERT INTO location_slots_config (id, location_id, step_minutes, min_booking_notice_minutes, advance_booking_days, time_zone)
			VALUES (1, NULL, 20, 0, 0, 'UTC'), (2, 11, 30, 60, 14, 'Europe/Moscow');`)
		repo := NewRepository(db)

		config, err := repo.GetConfigWithHierarchy(ctx, 10)
		require.NoError(t, err)
		assert.True(t, config.IsGlobalConfig())
		assert.Equal(t, 20, config.StepMinutes)
	})

	t.Run("nothing configured", func(t *testing.T) {
		repo := NewRepository(storagetest.OpenSQLite(t, schema))

		_, err := repo.GetConfigWithHierarchy(ctx, 10)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}
