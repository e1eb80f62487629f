package errors

import "fmt"

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("Valid token is required")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("invalid authorization header format")
	ErrInvalidCredentials = fmt.Errorf("Invalid email or password")
	ErrUnauthorized       = fmt.Errorf("Valid token is required")
	ErrForbidden          = fmt.Errorf("access denied")

	// Контекст запроса
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// Общие
	ErrNotFound   = fmt.Errorf("not found")
	ErrBadRequest = fmt.Errorf("bad request")
)
