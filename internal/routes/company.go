package routes

import (
	"career-finder/internal/controllers"
	"career-finder/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runCompanyRouter(e *echo.Echo, ctrl *controllers.CompanyController, authMW *middleware.AuthMiddleware) {
	group := e.Group("/companies")

	group.GET("/", ctrl.GetCompanies)
	group.GET("/my-company", ctrl.GetMyCompany, authMW.Auth, authMW.RequireEmployer)
	group.PUT("/my-company", ctrl.UpdateMyCompany, authMW.Auth, authMW.RequireEmployer)
	group.GET("/:id", ctrl.FindCompany)
}
