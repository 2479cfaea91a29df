package main

import (
	"context"
	"errors"
	"testing"

	"primespace/internal/database"

	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	origPool := newPgxPool
	origMigrations := runMigrationsFn
	origSeed := seedFn
	origExit := exitFunc
	t.Cleanup(func() {
		newPgxPool = origPool
		runMigrationsFn = origMigrations
		seedFn = origSeed
		exitFunc = origExit
	})
}

func TestRun(t *testing.T) {
	restoreGlobals(t)

	t.Setenv("DATABASE_URL", "")
	require.ErrorContains(t, run(), "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/primespace")

	runMigrationsFn = func(string) error { return errors.New("dirty") }
	require.ErrorContains(t, run(), "migrations failed")

	runMigrationsFn = func(string) error { return nil }
	newPgxPool = func(context.Context, string) (database.DB, error) {
		return nil, errors.New("refused")
	}
	require.ErrorContains(t, run(), "database connection failed")

	closed := false
	newPgxPool = func(context.Context, string) (database.DB, error) {
		return &database.FakeDB{CloseFn: func() { closed = true }}, nil
	}
	seedFn = func(context.Context, database.DB) error { return errors.New("boom") }
	require.ErrorContains(t, run(), "seeding failed")

	seeded := false
	seedFn = func(context.Context, database.DB) error { seeded = true; return nil }
	require.NoError(t, run())
	require.True(t, seeded)
	require.True(t, closed)
}
