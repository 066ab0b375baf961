package integration

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"membertrack/internal/db"
)

// setupTestDB creates a fresh SQLite database in a temp directory and runs
// all migrations against it. Each test gets its own file, so there is no
// cross-test cleanup to do.
func setupTestDB(t *testing.T) *sqlx.DB {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	path := filepath.Join(t.TempDir(), "membertrack_test.db")

	conn, err := db.Connect(path)
	require.NoError(t, err, "Failed to open test database")

	err = db.RunMigrations(conn, "../migrations")
	require.NoError(t, err, "Failed to run migrations")

	t.Cleanup(func() { conn.Close() })

	return conn
}

func insertTestMember(t *testing.T, conn *sqlx.DB, name, membershipType, status string) int {
	result, err := conn.Exec(`
		INSERT INTO members (name, membership_type, status)
		VALUES (?, ?, ?)
	`, name, membershipType, status)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return int(id)
}

func insertTestPayment(t *testing.T, conn *sqlx.DB, memberID int, amount float64, nextDueDate string) int {
	result, err := conn.Exec(`
		INSERT INTO payments (member_id, amount, payment_type, next_due_date)
		VALUES (?, ?, 'membership', ?)
	`, memberID, amount, nextDueDate)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return int(id)
}

func countRows(t *testing.T, conn *sqlx.DB, table string) int {
	var count int
	err := conn.Get(&count, "SELECT COUNT(*) FROM "+table)
	require.NoError(t, err)
	return count
}
