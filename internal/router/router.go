package router

import (
	"github.com/labstack/echo/v4"

	"primespace/internal/cache"
	"primespace/internal/database"
	"primespace/internal/handler"
	"primespace/internal/handler/auth"
	"primespace/internal/handler/properties"
	"primespace/internal/middleware"
	"primespace/internal/worker"
)

// Setup registers every route. Catalog reads are public; mutations sit
// behind the admin gate.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	e.GET("/", handler.HealthHandler())

	api := e.Group("/api")
	api.GET("", handler.HealthHandler())
	api.GET("/ping", handler.PingHandler(db, rdb))

	api.POST("/auth/login", auth.LoginHandler(db))
	api.POST("/auth/register", auth.RegisterHandler(db))

	apiProperties := api.Group("/properties")
	apiProperties.GET("", properties.ListPropertiesHandler(db, rdb))
	apiProperties.GET("/:id", properties.GetPropertyHandler(db))
	apiProperties.POST("", properties.CreatePropertyHandler(db, rdb, wp), middleware.RequireAdmin)
	apiProperties.PUT("/:id", properties.UpdatePropertyHandler(db, rdb, wp), middleware.RequireAdmin)
	apiProperties.DELETE("/:id", properties.DeletePropertyHandler(db, rdb, wp), middleware.RequireAdmin)
}
