package handler

import (
	"net/http"

	"primespace/internal/api"
	"primespace/internal/cache"
	"primespace/internal/database"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers the public liveness probe.
// @Summary     API health message
// @Description Confirms the API is up
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      / [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "PrimeSpace API is running..."})
	}
}

// PingHandler checks the database and cache connections.
// @Summary     Dependency health check
// @Description Pings Postgres and Redis and returns pong
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
