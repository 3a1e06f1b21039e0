// Package databasetest starts a throwaway Postgres for tests that need a real
// database.
package databasetest

import (
	"context"
	"testing"

	"catalog-api/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap/zaptest"
)

const image = "postgres:16-alpine"

// Container starts Postgres and returns its connection string. The test is
// skipped in -short mode or when no container runtime is reachable.
func Container(t *testing.T) string {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres-backed test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, image,
		postgres.WithDatabase("catalog"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return dsn
}

// NewPool returns a migrated pool on a fresh container.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := Container(t)
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, database.RunMigrations(ctx, pool, zaptest.NewLogger(t)))
	return pool
}

// Reset empties every table and restarts the id sequences.
func Reset(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), `
		TRUNCATE productscategoriesxref, warranties, products, categories, companies
		RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}
