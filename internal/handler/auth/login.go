package auth

import (
	"net/http"
	"strings"
	"time"

	"primespace/internal/api"
	"primespace/internal/database"
	"primespace/internal/service"
	"primespace/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	getUserByEmail   = store.GetUserByEmail
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
)

const tokenTTL = 24 * time.Hour

// LoginHandler verifies email/password credentials and returns a bearer
// token with the public profile. Unknown email and wrong password produce
// the same response so accounts cannot be enumerated.
// @Summary     Log in
// @Description Verify credentials and issue an access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       credentials body api.LoginRequest true "Email and password"
// @Success     200 {object} api.LoginResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := getUserByEmail(c.Request().Context(), db, strings.ToLower(req.Email))
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		authUser, err := authenticateUser(*user, req.Password)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := issueAccessToken(*authUser, tokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.LoginResponse{
			ID:       authUser.ID,
			Username: authUser.Username,
			Email:    authUser.Email,
			Role:     authUser.Role,
			Token:    token,
		})
	}
}
