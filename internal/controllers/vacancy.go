package controllers

import (
	"net/http"
	"strconv"

	"career-finder/internal/dto"
	"career-finder/internal/services"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type VacancyController struct {
	vacancyService services.VacancyServiceInterface
	searchService  services.SearchServiceInterface
	authService    services.AuthServiceInterface
	logger         *zap.Logger
}

func NewVacancyController(
	vacancyService services.VacancyServiceInterface,
	searchService services.SearchServiceInterface,
	authService services.AuthServiceInterface,
	logger *zap.Logger,
) *VacancyController {
	return &VacancyController{
		vacancyService: vacancyService,
		searchService:  searchService,
		authService:    authService,
		logger:         logger,
	}
}

func (c *VacancyController) GetVacancies(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseListQuery(ctx.Request().URL.Query(),
		"location", "employment_type", "experience_level")

	vacancies, total, err := c.searchService.SearchVacancies(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.ListResponse(ctx, vacancies, total, filter)
}

func (c *VacancyController) FindVacancy(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Invalid vacancy id",
				err,
				map[string]interface{}{"param": ctx.Param("id")},
			),
			c.logger,
		)
	}

	vacancy, err := c.vacancyService.GetByID(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"vacancy": vacancy})
}

func (c *VacancyController) CreateVacancy(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.GetUserByID(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateVacancyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	vacancy, err := c.vacancyService.Create(reqCtx, user, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("вакансия создана",
		zap.Uint64("vacancy_id", vacancy.ID),
		zap.Uint64("employer_id", user.ID),
	)

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message": "Vacancy created successfully",
		"vacancy": vacancy,
	})
}

func (c *VacancyController) ApplyToVacancy(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	vacancyID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Invalid vacancy id",
				err,
				map[string]interface{}{"param": ctx.Param("id")},
			),
			c.logger,
		)
	}

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.GetUserByID(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.ApplyDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}

	application, err := c.vacancyService.Apply(reqCtx, user, vacancyID, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("отклик отправлен",
		zap.Uint64("vacancy_id", vacancyID),
		zap.Uint64("application_id", application.ID),
	)

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message":     "Application submitted successfully",
		"application": application,
	})
}
