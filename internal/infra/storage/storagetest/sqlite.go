// Package storagetest поднимает in-memory SQLite для тестов репозиториев
package storagetest

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// OpenSQLite открывает чистую in-memory базу и применяет schema.
// Соединение одно: каждое новое соединение к ":memory:" видит пустую базу
func OpenSQLite(t *testing.T, schema string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	_, err = db.Exec(schema)
	require.NoError(t, err)

	return db
}
