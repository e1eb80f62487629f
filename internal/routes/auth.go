package routes

import (
	"career-finder/internal/controllers"
	"career-finder/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runAuthRouter(e *echo.Echo, ctrl *controllers.AuthController, authMW *middleware.AuthMiddleware) {
	group := e.Group("/auth")

	group.POST("/register", ctrl.Register)
	group.POST("/login", ctrl.Login)
	group.GET("/me", ctrl.Me, authMW.Auth)
	group.POST("/refresh", ctrl.Refresh, authMW.Auth)
	group.POST("/password-reset/request", ctrl.RequestPasswordReset)
	group.POST("/password-reset/confirm", ctrl.ConfirmPasswordReset)
}
