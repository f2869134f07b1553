//go:build integration

package pgsql_test

import (
	"context"
	"testing"

	"github.com/SscSPs/alsabqon_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/alsabqon_app/internal/repositories/repotest"
	"github.com/SscSPs/alsabqon_app/pkg/database"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func TestPgxPracticeRepository(t *testing.T) {
	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("alsabqon"),
		postgres.WithUsername("alsabqon"),
		postgres.WithPassword("alsabqon"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.RunMigrations(dsn, "file://../../../../migrations", database.MigrateUp))

	pool, err := database.NewPgxPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { database.ClosePgxPool(pool) })

	repotest.RunPracticeRepositoryContract(t, pgsql.NewRepositoryProvider(pool).PracticeRepo)
}
