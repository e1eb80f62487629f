package routes

import (
	"career-finder/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runApiRouter(e *echo.Echo, ctrl *controllers.ApiController) {
	group := e.Group("/api/v1")

	group.GET("/stats", ctrl.GetStats)
	group.GET("/health", ctrl.HealthCheck)
}
