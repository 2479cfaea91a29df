package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestFakeDB(t *testing.T) {
	f := &FakeDB{}
	require.Panics(t, func() { f.Exec(context.Background(), "SELECT 1") })
	require.Panics(t, func() { f.Query(context.Background(), "SELECT 1") })
	require.Panics(t, func() { f.QueryRow(context.Background(), "SELECT 1") })
	require.Panics(t, func() { f.Ping(context.Background()) })
	f.Close() // no-op without a hook

	f = &FakeDB{
		ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			require.Equal(t, "DELETE FROM properties", sql)
			require.Empty(t, args)
			return pgconn.NewCommandTag("DELETE 8"), nil
		},
		QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
			return nil, errors.New("boom")
		},
		PingFn:  func(context.Context) error { return errors.New("down") },
		CloseFn: func() {},
	}

	tag, err := f.Exec(context.Background(), "DELETE FROM properties")
	require.NoError(t, err)
	require.EqualValues(t, 8, tag.RowsAffected())

	_, err = f.Query(context.Background(), "SELECT 1")
	require.Error(t, err)
	require.Error(t, f.Ping(context.Background()))
	f.Close()
}
