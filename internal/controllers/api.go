package controllers

import (
	"net/http"

	"career-finder/internal/services"
	"career-finder/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ApiController struct {
	statsService services.StatsServiceInterface
	logger       *zap.Logger
}

func NewApiController(statsService services.StatsServiceInterface, logger *zap.Logger) *ApiController {
	return &ApiController{statsService: statsService, logger: logger}
}

func (c *ApiController) GetStats(ctx echo.Context) error {
	stats, err := c.statsService.GetStats(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, stats)
}

func (c *ApiController) HealthCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":  "healthy",
		"service": "CareerFinder API",
	})
}
