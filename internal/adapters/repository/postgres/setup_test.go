package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func applyMigrations(db *sql.DB) error {
	goose.SetBaseFS(Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, MigrationsDir)
}

// setupTestDB starts a migrated PostgreSQL container that lives for the test.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("awards_test"),
		tcpostgres.WithUsername("awards"),
		tcpostgres.WithPassword("awards"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, applyMigrations(db))
	return db
}

type catalogFixture struct {
	EditionID        string
	CategoryID       string
	OtherCategoryID  string
	OrphanCategoryID string
	NomineeID        string
	OtherNomineeID   string
	OrphanNomineeID  string
}

func seedCatalog(t *testing.T, db *sql.DB) catalogFixture {
	t.Helper()
	var f catalogFixture

	require.NoError(t, db.QueryRow(`INSERT INTO editions (name) VALUES ('2025') RETURNING id`).Scan(&f.EditionID))
	require.NoError(t, db.QueryRow(`INSERT INTO categories (edition_id, name) VALUES ($1, 'Best Film') RETURNING id`, f.EditionID).Scan(&f.CategoryID))
	require.NoError(t, db.QueryRow(`INSERT INTO categories (edition_id, name) VALUES ($1, 'Best Score') RETURNING id`, f.EditionID).Scan(&f.OtherCategoryID))
	require.NoError(t, db.QueryRow(`INSERT INTO categories (name) VALUES ('Unassigned') RETURNING id`).Scan(&f.OrphanCategoryID))
	require.NoError(t, db.QueryRow(`INSERT INTO nominees (category_id, name) VALUES ($1, 'Film A') RETURNING id`, f.CategoryID).Scan(&f.NomineeID))
	require.NoError(t, db.QueryRow(`INSERT INTO nominees (category_id, name) VALUES ($1, 'Score B') RETURNING id`, f.OtherCategoryID).Scan(&f.OtherNomineeID))
	require.NoError(t, db.QueryRow(`INSERT INTO nominees (category_id, name) VALUES ($1, 'Nobody') RETURNING id`, f.OrphanCategoryID).Scan(&f.OrphanNomineeID))

	return f
}

func countVotes(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM votes`).Scan(&n))
	return n
}
