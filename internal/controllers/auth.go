package controllers

import (
	"net/http"

	"career-finder/internal/dto"
	"career-finder/internal/services"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/service"
	"career-finder/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthController struct {
	authService services.AuthServiceInterface
	jwtSvc      service.JWTService
	logger      *zap.Logger
}

func NewAuthController(
	authService services.AuthServiceInterface,
	jwtSvc service.JWTService,
	logger *zap.Logger,
) *AuthController {
	return &AuthController{
		authService: authService,
		jwtSvc:      jwtSvc,
		logger:      logger,
	}
}

func (c *AuthController) Register(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.RegisterDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.Register(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	token, err := c.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		c.logger.Error("не удалось выдать токен после регистрации", zap.Uint64("user_id", user.ID), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewInternalError("Internal server error", err), c.logger)
	}

	c.logger.Info("пользователь зарегистрирован",
		zap.Uint64("user_id", user.ID),
		zap.String("user_type", user.UserType),
	)

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message":      "User registered successfully",
		"access_token": token,
		"user":         user,
	})
}

func (c *AuthController) Login(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.LoginDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.Login(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	token, err := c.jwtSvc.GenerateToken(user.ID)
	if err != nil {
		c.logger.Error("не удалось выдать токен при входе", zap.Uint64("user_id", user.ID), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewInternalError("Internal server error", err), c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"access_token": token,
		"user":         user,
	})
}

func (c *AuthController) Me(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	userID, err := utils.GetUserIDFromCtx(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	user, err := c.authService.GetUserByID(reqCtx, userID)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"user": user})
}

// Refresh выдаёт новый токен по действующему. Пользователь из базы
// повторно не читается.
func (c *AuthController) Refresh(ctx echo.Context) error {
	userID, err := utils.GetUserIDFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	token, err := c.jwtSvc.GenerateToken(userID)
	if err != nil {
		c.logger.Error("не удалось обновить токен", zap.Uint64("user_id", userID), zap.Error(err))
		return utils.ErrorResponse(ctx, apperrors.NewInternalError("Internal server error", err), c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"access_token": token})
}

func (c *AuthController) RequestPasswordReset(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.PasswordResetRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.authService.RequestPasswordReset(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	// Ответ одинаковый для существующих и несуществующих адресов.
	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "If this email is registered, a password reset link has been sent",
	})
}

func (c *AuthController) ConfirmPasswordReset(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.PasswordResetConfirmDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Invalid request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.authService.ResetPassword(reqCtx, payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"message": "Password has been reset successfully"})
}
