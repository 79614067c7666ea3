package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-ChainBookingService/pkg/metrics"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Exec(`CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestDB_ObservesQueries(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	db := Wrap(openSQLite(t), m)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO items (id, name) VALUES ($1, $2)`, 1, "cut")
	require.NoError(t, err)

	var name string
	require.NoError(t, db.QueryRowContext(ctx, `SELECT name FROM items WHERE id = $1`, 1).Scan(&name))
	assert.Equal(t, "cut", name)

	rows, err := db.QueryContext(ctx, `SELECT id FROM items`)
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	_, err = db.QueryContext(ctx, `SELECT id FROM missing_table`)
	require.Error(t, err)

	// exec/ok, query_row/ok, query/ok, query/error
	assert.Equal(t, 4, testutil.CollectAndCount(m.DBQueryDuration))
}

func TestWrapWithDefault_RecordsPoolStats(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	raw := openSQLite(t)
	stopCh := make(chan struct{})
	defer close(stopCh)

	WrapWithDefault(raw, m, stopCh)

	// после создания таблицы соединение осталось в пуле
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.DBOpenConnections) == 1 &&
			testutil.ToFloat64(m.DBIdleConnections) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DBInUseConnections))
}

func TestCollectPoolStats_StopsOnClose(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "test")
	db := Wrap(openSQLite(t), m)
	stopCh := make(chan struct{})
	done := make(chan struct{})

	go func() {
		db.collectPoolStats(5*time.Millisecond, stopCh)
		close(done)
	}()

	close(stopCh)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool stats collector did not stop")
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBOpenConnections), "stats are recorded before the first tick")
}
