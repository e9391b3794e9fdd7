// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"catalog/internal/config"
	"catalog/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// OpenTestSQLite opens a private, migrated in-memory sqlite database that is
// closed when t finishes.
func OpenTestSQLite(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Open(config.DriverSQLite, dsn, true, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}
