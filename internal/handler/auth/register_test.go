package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"primespace/internal/database"
	"primespace/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type structValidator struct {
	v *validator.Validate
}

func (sv structValidator) Validate(i any) error { return sv.v.Struct(i) }

func newRegisterEcho() *echo.Echo {
	e := echo.New()
	e.Validator = structValidator{v: validator.New()}
	return e
}

func TestRegisterHandler(t *testing.T) {
	// bind error
	e := echo.New()
	e.Binder = errBinder{}
	ctx, rec := newAuthCtx(e, "")
	h := RegisterHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// password below the minimum length
	e = newRegisterEcho()
	ctx, rec = newAuthCtx(e, `{"username":"alice","email":"alice@example.com","password":"short"}`)
	h = RegisterHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// invalid email
	ctx, rec = newAuthCtx(e, `{"username":"alice","email":"not-an-email","password":"Secret123!"}`)
	h = RegisterHandler(&database.FakeDB{})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// duplicate email
	ctx, rec = newAuthCtx(e, `{"username":"alice","email":"alice@example.com","password":"Secret123!"}`)
	h = RegisterHandler(&database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
		return fakeUserRow{err: &pgconn.PgError{Code: "23505"}}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusConflict, rec.Code)

	// success: email lowercased, default role, no hash in response
	now := time.Now().UTC()
	var insertArgs []any
	ctx, rec = newAuthCtx(e, `{"username":"alice","email":"Alice@Example.com","password":"Secret123!"}`)
	h = RegisterHandler(&database.FakeDB{QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
		insertArgs = args
		return fakeUserRow{u: model.User{ID: 5, CreatedAt: now}}
	}})
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, insertArgs, 4)
	require.Equal(t, "alice@example.com", insertArgs[1])
	require.Equal(t, model.RoleUser, insertArgs[3])
	require.NotEqual(t, "Secret123!", insertArgs[2]) // stored hashed
	require.Contains(t, rec.Body.String(), `"id":5`)
	require.NotContains(t, rec.Body.String(), "Secret123!")
	require.NotContains(t, rec.Body.String(), "token")
}
