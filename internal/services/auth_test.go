package services

import (
	"context"
	"testing"
	"time"

	"career-finder/internal/dto"
	"career-finder/internal/entities"
	"career-finder/pkg/config"
	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	svc          AuthServiceInterface
	users        *stubUserRepo
	profiles     *stubProfileRepo
	companies    *stubCompanyRepo
	cache        *stubCacheRepo
	notification *recordingNotification
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		users:        newStubUserRepo(),
		profiles:     newStubProfileRepo(),
		companies:    newStubCompanyRepo(),
		cache:        newStubCacheRepo(),
		notification: &recordingNotification{},
	}
	f.svc = NewAuthService(
		f.users, f.profiles, f.companies, f.cache,
		&stubTxManager{}, f.notification,
		&config.AuthConfig{ResetTokenTTL: 15 * time.Minute},
		zap.NewNop(),
	)
	return f
}

func TestRegister_JobSeekerDefaults(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Register(context.Background(), dto.RegisterDTO{
		Email:    "ivan@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, entities.UserTypeJobSeeker, user.UserType)
	assert.Equal(t, "ivan", user.Username)
	assert.True(t, user.IsActive)
	assert.Equal(t, "ivan@example.com", f.notification.welcomeTo)

	// У соискателя появляется профиль, компании нет.
	_, err = f.profiles.FindByUserID(context.Background(), user.ID)
	assert.NoError(t, err)
	_, err = f.companies.FindByUserID(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegister_EmployerGetsCompany(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Register(context.Background(), dto.RegisterDTO{
		Username: "techcorp_hr",
		Email:    "hr@techcorp.example",
		Password: "password123",
		UserType: entities.UserTypeEmployer,
	})
	require.NoError(t, err)

	company, err := f.companies.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Company of techcorp_hr", company.Name)

	_, err = f.profiles.FindByUserID(context.Background(), user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRegister_EmployerCustomCompanyName(t *testing.T) {
	f := newAuthFixture()

	user, err := f.svc.Register(context.Background(), dto.RegisterDTO{
		Email:       "jobs@finbank.example",
		Password:    "password123",
		UserType:    entities.UserTypeEmployer,
		CompanyName: "FinBank",
	})
	require.NoError(t, err)

	company, err := f.companies.FindByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "FinBank", company.Name)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, dto.RegisterDTO{Email: "dup@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, dto.RegisterDTO{
		Username: "another",
		Email:    "dup@example.com",
		Password: "password123",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
	assert.Equal(t, "User already exists with this email", httpErr.Message)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	_, err := f.svc.Register(ctx, dto.RegisterDTO{
		Username: "taken",
		Email:    "first@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = f.svc.Register(ctx, dto.RegisterDTO{
		Username: "taken",
		Email:    "second@example.com",
		Password: "password123",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 409, httpErr.Code)
	assert.Equal(t, "Username already taken", httpErr.Message)
}

func TestLogin(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	registered, err := f.svc.Register(ctx, dto.RegisterDTO{Email: "login@example.com", Password: "password123"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		user, err := f.svc.Login(ctx, dto.LoginDTO{Email: "login@example.com", Password: "password123"})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := f.svc.Login(ctx, dto.LoginDTO{Email: "login@example.com", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := f.svc.Login(ctx, dto.LoginDTO{Email: "ghost@example.com", Password: "password123"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("deactivated account", func(t *testing.T) {
		f.users.users[registered.ID].IsActive = false
		defer func() { f.users.users[registered.ID].IsActive = true }()

		_, err := f.svc.Login(ctx, dto.LoginDTO{Email: "login@example.com", Password: "password123"})

		var httpErr *apperrors.HttpError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, 403, httpErr.Code)
		assert.Equal(t, "Account is deactivated", httpErr.Message)
	})
}

func TestPasswordReset_FullFlow(t *testing.T) {
	f := newAuthFixture()
	ctx := context.Background()

	user, err := f.svc.Register(ctx, dto.RegisterDTO{Email: "reset@example.com", Password: "oldpassword"})
	require.NoError(t, err)

	require.NoError(t, f.svc.RequestPasswordReset(ctx, dto.PasswordResetRequestDTO{Email: "reset@example.com"}))
	require.NotEmpty(t, f.notification.resetToken)

	err = f.svc.ResetPassword(ctx, dto.PasswordResetConfirmDTO{
		Token:       f.notification.resetToken,
		NewPassword: "newpassword",
	})
	require.NoError(t, err)

	stored := f.users.users[user.ID]
	assert.NoError(t, utils.ComparePasswords(stored.PasswordHash, "newpassword"))
	assert.Error(t, utils.ComparePasswords(stored.PasswordHash, "oldpassword"))

	// Токен одноразовый.
	err = f.svc.ResetPassword(ctx, dto.PasswordResetConfirmDTO{
		Token:       f.notification.resetToken,
		NewPassword: "anotherone",
	})
	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
}

func TestPasswordReset_UnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.RequestPasswordReset(context.Background(), dto.PasswordResetRequestDTO{Email: "ghost@example.com"})
	assert.NoError(t, err)
	assert.Empty(t, f.notification.resetToken)
}

func TestResetPassword_InvalidToken(t *testing.T) {
	f := newAuthFixture()

	err := f.svc.ResetPassword(context.Background(), dto.PasswordResetConfirmDTO{
		Token:       "no-such-token",
		NewPassword: "whatever1",
	})

	var httpErr *apperrors.HttpError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 400, httpErr.Code)
	assert.Equal(t, "Invalid or expired password reset token", httpErr.Message)
}
