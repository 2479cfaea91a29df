package store

import (
	"context"
	"testing"
	"time"

	"primespace/internal/database"
	"primespace/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func scanPropertyInto(p model.Property, dest []any) {
	*dest[0].(*int) = p.ID
	*dest[1].(*string) = p.Title
	*dest[2].(*string) = p.Location
	*dest[3].(*int64) = p.Price
	*dest[4].(*string) = p.Description
	*dest[5].(*string) = p.Type
	*dest[6].(*string) = p.Status
	*dest[7].(*int) = p.Bedrooms
	*dest[8].(*int) = p.Bathrooms
	*dest[9].(*int) = p.Area
	*dest[10].(*string) = p.Image
	*dest[11].(*int) = p.CreatedBy
	*dest[12].(*time.Time) = p.CreatedAt
}

// fakePropertyRow implements pgx.Row.
type fakePropertyRow struct {
	scanErr  error
	property *model.Property
}

func (r *fakePropertyRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	p := r.property
	switch len(dest) {
	case 13:
		scanPropertyInto(*p, dest)
	case 2:
		// CreateProperty RETURNING id, created_at
		*dest[0].(*int) = p.ID
		*dest[1].(*time.Time) = p.CreatedAt
	default:
		panic("fakePropertyRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakePropertyRows implements pgx.Rows.
type fakePropertyRows struct {
	data    []model.Property
	idx     int
	scanErr error
	err     error
}

func (r *fakePropertyRows) Close()                                       {}
func (r *fakePropertyRows) Err() error                                   { return r.err }
func (r *fakePropertyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakePropertyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakePropertyRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakePropertyRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	scanPropertyInto(r.data[r.idx], dest)
	r.idx++
	return nil
}
func (r *fakePropertyRows) Values() ([]any, error) { return nil, nil }
func (r *fakePropertyRows) RawValues() [][]byte    { return nil }
func (r *fakePropertyRows) Conn() *pgx.Conn        { return nil }

func sampleProperty(now time.Time) model.Property {
	return model.Property{
		ID:          1,
		Title:       "Luxury Villa in Tilakwadi",
		Location:    "Tilakwadi, Belgaum",
		Price:       8500000,
		Description: "Stunning 4BHK villa",
		Type:        model.TypeSale,
		Status:      model.StatusAvailable,
		Bedrooms:    4,
		Bathrooms:   3,
		Area:        2400,
		Image:       model.DefaultImage,
		CreatedBy:   1,
		CreatedAt:   now,
	}
}

func TestListProperties(t *testing.T) {
	now := time.Now().UTC()
	villa := sampleProperty(now)
	flat := villa
	flat.ID = 2
	flat.Title = "Modern Apartment in Shahapur"
	flat.Type = model.TypeRent

	t.Run("no filter", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL = sql
				gotArgs = args
				return &fakePropertyRows{data: []model.Property{flat, villa}}, nil
			},
		}
		got, err := ListProperties(context.Background(), db, PropertyFilter{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		require.Equal(t, "Modern Apartment in Shahapur", got[0].Title)
		require.NotContains(t, gotSQL, "WHERE")
		require.Contains(t, gotSQL, "ORDER BY created_at DESC")
		require.Empty(t, gotArgs)
	})

	t.Run("filters build conditions", func(t *testing.T) {
		var gotSQL string
		var gotArgs []any
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				gotSQL = sql
				gotArgs = args
				return &fakePropertyRows{data: []model.Property{villa}}, nil
			},
		}
		got, err := ListProperties(context.Background(), db, PropertyFilter{
			Type:     model.TypeSale,
			Status:   model.StatusAvailable,
			Location: "belgaum",
		})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Contains(t, gotSQL, "type = $1")
		require.Contains(t, gotSQL, "status = $2")
		require.Contains(t, gotSQL, "location ILIKE $3")
		require.Equal(t, []any{model.TypeSale, model.StatusAvailable, "%belgaum%"}, gotArgs)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakePropertyRows{}, nil
			},
		}
		got, err := ListProperties(context.Background(), db, PropertyFilter{Type: model.TypeRent})
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}

func TestGetPropertyByID(t *testing.T) {
	now := time.Now().UTC()
	villa := sampleProperty(now)

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{1}, args)
				return &fakePropertyRow{property: &villa}
			},
		}
		got, err := GetPropertyByID(context.Background(), db, 1)
		require.NoError(t, err)
		require.Equal(t, villa.Title, got.Title)
		require.Equal(t, villa.Price, got.Price)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakePropertyRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetPropertyByID(context.Background(), db, 999)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCreateProperty(t *testing.T) {
	now := time.Now().UTC()
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
			require.Len(t, args, 11)
			return &fakePropertyRow{property: &model.Property{ID: 42, CreatedAt: now}}
		},
	}
	p := sampleProperty(time.Time{})
	p.ID = 0
	got, err := CreateProperty(context.Background(), db, &p)
	require.NoError(t, err)
	require.Equal(t, 42, got.ID)
	require.Equal(t, now, got.CreatedAt)
}

func TestUpdateProperty(t *testing.T) {
	now := time.Now().UTC()
	villa := sampleProperty(now)

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Len(t, args, 11)
				require.Equal(t, villa.ID, args[10])
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateProperty(context.Background(), db, &villa))
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		require.ErrorIs(t, UpdateProperty(context.Background(), db, &villa), ErrNotFound)
	})
}

func TestDeleteProperty(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{1}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteProperty(context.Background(), db, 1))
	})

	t.Run("already gone", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteProperty(context.Background(), db, 1), ErrNotFound)
	})
}
