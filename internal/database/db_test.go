package database_test

import (
	"context"
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/valeriaulyamaeva/due-reminders/internal/database"
)

// connectTestDB returns a migrated pool, or skips when no test database is configured.
func connectTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("TEST_DATABASE_URL не задан")
	}
	require.NoError(t, database.Migrate(connStr))

	pool, err := database.ConnectDB(context.Background(), connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

// testScope isolates rows created by one test.
func testScope() string {
	return "test-" + gofakeit.UUID()
}
