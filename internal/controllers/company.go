package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"career-finder/internal/dto"
	"career-finder/internal/services"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CompanyController struct {
	companyService services.CompanyServiceInterface
	searchService  services.SearchServiceInterface
	logger         *zap.Logger
}

func NewCompanyController(
	companyService services.CompanyServiceInterface,
	searchService services.SearchServiceInterface,
	logger *zap.Logger,
) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		searchService:  searchService,
		logger:         logger,
	}
}

func (c *CompanyController) GetCompanies(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	filter := utils.ParseListQuery(ctx.Request().URL.Query(), "industry")

	companies, total, err := c.searchService.SearchCompanies(reqCtx, filter)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.ListResponse(ctx, companies, total, filter)
}

func (c *CompanyController) FindCompany(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(
				http.StatusBadRequest,
				"Invalid company id",
				err,
				map[string]interface{}{"param": ctx.Param("id")},
			),
			c.logger,
		)
	}

	company, err := c.companyService.GetByID(reqCtx, id)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"company": company})
}

func (c *CompanyController) GetMyCompany(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	company, err := c.companyService.GetMine(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"company": company})
}

// UpdateMyCompany читает тело вручную: по сырому JSON отличаем
// непереданные поля от переданных как null.
func (c *CompanyController) UpdateMyCompany(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	rawBody, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}

	sent, err := utils.SentFields(rawBody)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}

	var payload dto.UpdateCompanyDTO
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}

	company, err := c.companyService.UpdateMine(reqCtx, userID, payload, sent)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("компания обновлена", zap.Uint64("company_id", company.ID))

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Company updated successfully",
		"company": company,
	})
}
