package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"career-finder/internal/dto"
	"career-finder/internal/services"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
	logger         *zap.Logger
}

func NewProfileController(profileService services.ProfileServiceInterface, logger *zap.Logger) *ProfileController {
	return &ProfileController{profileService: profileService, logger: logger}
}

func (c *ProfileController) GetMyProfile(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	profile, err := c.profileService.GetMine(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"profile": profile})
}

func (c *ProfileController) UpdateMyProfile(ctx echo.Context) error {
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

	var payload dto.UpdateProfileDTO
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}

	profile, err := c.profileService.UpdateMine(reqCtx, userID, payload, sent)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	c.logger.Info("профиль обновлён", zap.Uint64("profile_id", profile.ID))

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Profile updated successfully",
		"profile": profile,
	})
}

func (c *ProfileController) GetMyApplications(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	applications, err := c.profileService.ListMyApplications(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"applications": applications})
}
