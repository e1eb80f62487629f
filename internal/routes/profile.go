package routes

import (
	"career-finder/internal/controllers"
	"career-finder/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runProfileRouter(e *echo.Echo, ctrl *controllers.ProfileController, authMW *middleware.AuthMiddleware) {
	group := e.Group("/profile", authMW.Auth)

	group.GET("/my-profile", ctrl.GetMyProfile, authMW.RequireJobSeeker)
	group.PUT("/my-profile", ctrl.UpdateMyProfile, authMW.RequireJobSeeker)
	group.GET("/my-applications", ctrl.GetMyApplications)
}
