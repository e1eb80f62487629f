// Файл: internal/services/auth.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"career-finder/internal/dto"
	"career-finder/internal/entities"
	"career-finder/internal/repositories"
	"career-finder/pkg/config"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error)
	Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error)
	GetUserByID(ctx context.Context, userID uint64) (*entities.User, error)
	RequestPasswordReset(ctx context.Context, payload dto.PasswordResetRequestDTO) error
	ResetPassword(ctx context.Context, payload dto.PasswordResetConfirmDTO) error
}

type AuthService struct {
	userRepo     repositories.UserRepositoryInterface
	profileRepo  repositories.ProfileRepositoryInterface
	companyRepo  repositories.CompanyRepositoryInterface
	cacheRepo    repositories.CacheRepositoryInterface
	txManager    repositories.TxManagerInterface
	notification NotificationServiceInterface
	cfg          *config.AuthConfig
	logger       *zap.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	profileRepo repositories.ProfileRepositoryInterface,
	companyRepo repositories.CompanyRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	txManager repositories.TxManagerInterface,
	notification NotificationServiceInterface,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		companyRepo:  companyRepo,
		cacheRepo:    cacheRepo,
		txManager:    txManager,
		notification: notification,
		cfg:          cfg,
		logger:       logger,
	}
}

// Register создает пользователя и сущность его роли (профиль или компанию)
// в одной транзакции: либо появляются обе записи, либо ни одной.
func (s *AuthService) Register(ctx context.Context, payload dto.RegisterDTO) (*entities.User, error) {
	userType := payload.UserType
	if userType == "" {
		userType = entities.UserTypeJobSeeker
	}

	username := payload.Username
	if username == "" {
		username = strings.SplitN(payload.Email, "@", 2)[0]
	}

	if _, err := s.userRepo.FindByEmail(ctx, payload.Email); err == nil {
		return nil, apperrors.NewConflictError("User already exists with this email")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.NewConflictError("Username already taken")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	var created *entities.User
	err = s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		user, err := s.userRepo.Create(ctx, tx, &entities.User{
			Username:     username,
			Email:        payload.Email,
			PasswordHash: passwordHash,
			UserType:     userType,
			IsActive:     true,
		})
		if err != nil {
			return err
		}

		switch userType {
		case entities.UserTypeJobSeeker:
			if _, err := s.profileRepo.CreateForUser(ctx, tx, user.ID); err != nil {
				return err
			}
		case entities.UserTypeEmployer:
			companyName := payload.CompanyName
			if companyName == "" {
				companyName = fmt.Sprintf("Company of %s", user.Username)
			}
			if _, err := s.companyRepo.Create(ctx, tx, user.ID, companyName); err != nil {
				return err
			}
		}

		created = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !s.notification.SendWelcomeEmail(created) {
		s.logger.Warn("Приветственное письмо не доставлено", zap.Uint64("userID", created.ID))
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*entities.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.ComparePasswords(user.PasswordHash, payload.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.NewForbiddenError("Account is deactivated")
	}

	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, userID uint64) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset всегда отвечает без ошибки: существование email
// наружу не раскрывается.
func (s *AuthService) RequestPasswordReset(ctx context.Context, payload dto.PasswordResetRequestDTO) error {
	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("Запрос сброса пароля для неизвестного email")
			return nil
		}
		return err
	}

	resetToken := uuid.New().String()
	cacheKey := fmt.Sprintf("reset_email:%s", resetToken)
	if err := s.cacheRepo.Set(ctx, cacheKey, user.ID, s.cfg.ResetTokenTTL); err != nil {
		return fmt.Errorf("не удалось сохранить токен сброса: %w", err)
	}

	if !s.notification.SendPasswordResetEmail(user.Email, resetToken) {
		s.logger.Warn("Письмо со сбросом пароля не доставлено", zap.Uint64("userID", user.ID))
	}

	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, payload dto.PasswordResetConfirmDTO) error {
	cacheKey := fmt.Sprintf("reset_email:%s", payload.Token)
	userIDStr, err := s.cacheRepo.Get(ctx, cacheKey)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid or expired password reset token")
	}

	userID, err := strconv.ParseUint(userIDStr, 10, 64)
	if err != nil || userID == 0 {
		return apperrors.NewInternalError("Internal server error",
			fmt.Errorf("некорректный userID в кэше: %q", userIDStr))
	}

	passwordHash, err := utils.HashPassword(payload.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		return err
	}

	_ = s.cacheRepo.Del(ctx, cacheKey)
	return nil
}
