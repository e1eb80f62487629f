package routes

import (
	"career-finder/internal/controllers"
	"career-finder/pkg/middleware"

	"github.com/labstack/echo/v4"
)

func runVacancyRouter(e *echo.Echo, ctrl *controllers.VacancyController, authMW *middleware.AuthMiddleware) {
	group := e.Group("/vacancies")

	group.GET("/", ctrl.GetVacancies)
	group.GET("/:id", ctrl.FindVacancy)
	// Проверка типа пользователя живёт в сервисе: у каждой операции
	// своё сообщение об отказе.
	group.POST("/", ctrl.CreateVacancy, authMW.Auth)
	group.POST("/:id/apply", ctrl.ApplyToVacancy, authMW.Auth)
}
