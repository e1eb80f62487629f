package middleware

import (
	"context"
	"net/http"
	"strings"

	"career-finder/internal/entities"
	"career-finder/pkg/contextkeys"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/service"
	"career-finder/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// userFinder отдаёт пользователя по его идентификатору.
// Реализуется сервисом аутентификации.
type userFinder interface {
	GetUserByID(ctx context.Context, id uint64) (*entities.User, error)
}

type AuthMiddleware struct {
	jwtSvc service.JWTService
	users  userFinder
	logger *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, users userFinder, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtSvc: jwtSvc,
		users:  users,
		logger: logger,
	}
}

// Auth проверяет заголовок Authorization и кладёт user_id в контекст запроса.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		claims, err := m.jwtSvc.ValidateToken(parts[1])
		if err != nil {
			m.logger.Debug("токен не прошёл проверку", zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.UserIDKey, claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireEmployer пускает дальше только работодателей.
func (m *AuthMiddleware) RequireEmployer(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireUserType(next, entities.UserTypeEmployer, "Employer access required")
}

// RequireJobSeeker пускает дальше только соискателей.
func (m *AuthMiddleware) RequireJobSeeker(next echo.HandlerFunc) echo.HandlerFunc {
	return m.requireUserType(next, entities.UserTypeJobSeeker, "Job seeker access required")
}

func (m *AuthMiddleware) requireUserType(next echo.HandlerFunc, userType, message string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		userID, err := utils.GetUserIDFromCtx(ctx)
		if err != nil {
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		user, err := m.users.GetUserByID(ctx, userID)
		if err != nil || user.UserType != userType {
			return utils.ErrorResponse(c, apperrors.NewHttpError(http.StatusForbidden, message, err, nil), m.logger)
		}

		ctx = context.WithValue(ctx, contextkeys.UserTypeKey, user.UserType)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
