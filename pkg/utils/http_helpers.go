package utils

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	apperrors "career-finder/pkg/errors"
	"career-finder/pkg/types"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ParseListQuery разбирает page/per_page/search и перечисленные
// фильтры из query-параметров. Невалидные значения молча заменяются
// значениями по умолчанию, ошибкой это не считается.
func ParseListQuery(values url.Values, filterKeys ...string) types.Filter {
	f := types.Filter{
		Filter:  make(map[string]interface{}),
		Page:    1,
		PerPage: DefaultPerPage,
	}

	if pageStr := values.Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			f.Page = p
		}
	}

	if perPageStr := values.Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			if pp > MaxPerPage {
				f.PerPage = MaxPerPage
			} else {
				f.PerPage = pp
			}
		}
	}

	f.Offset = (f.Page - 1) * f.PerPage
	f.Search = values.Get("search")

	for _, key := range filterKeys {
		if val := values.Get(key); val != "" {
			f.Filter[key] = val
		}
	}

	return f
}

// TotalPages считает количество страниц для данного размера страницы.
// Деление идёт в uint64, чтобы большой total не переполнял int.
func TotalPages(total uint64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := total / uint64(perPage)
	if total%uint64(perPage) != 0 {
		pages++
	}
	return int(pages)
}

// ListResponse отдаёт список в формате {items, total, pages, current_page}.
func ListResponse(ctx echo.Context, items interface{}, total uint64, filter types.Filter) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"items":        items,
		"total":        total,
		"pages":        TotalPages(total, filter.PerPage),
		"current_page": filter.Page,
	})
}

// ErrorResponse приводит любую ошибку к контракту {message} с нужным
// HTTP-статусом. Внутренние детали наружу не уходят.
func ErrorResponse(c echo.Context, err error, logger *zap.Logger) error {
	var httpErr *apperrors.HttpError
	if errors.As(err, &httpErr) {
		if httpErr.Err != nil {
			logger.Error("HTTP Error",
				zap.Int("code", httpErr.Code),
				zap.String("message", httpErr.Message),
				zap.Error(httpErr.Err),
				zap.Any("context", httpErr.Context),
			)
		}
		return c.JSON(httpErr.Code, echo.Map{"message": httpErr.Message})
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		// Как и в исходном API, наружу уходит одно сообщение — по первой
		// упавшей проверке.
		return c.JSON(http.StatusBadRequest, echo.Map{"message": ValidationMessage(validationErrors[0])})
	}

	if code, ok := sentinelStatus(err); ok {
		return c.JSON(code, echo.Map{"message": err.Error()})
	}

	logger.Error("Unexpected Error", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Internal server error"})
}

// ValidationMessage переводит ошибку валидатора в текст ответа API.
// Формулировки зафиксированы контрактом, тексты библиотеки наружу не уходят.
func ValidationMessage(e validator.FieldError) string {
	switch {
	case e.Tag() == "required" && (e.Field() == "Email" || e.Field() == "Password"):
		return "Email and password are required"
	case e.Tag() == "email":
		return "Invalid email format"
	case e.Tag() == "min" && (e.Field() == "Password" || e.Field() == "NewPassword"):
		return "Password must be at least 6 characters long"
	case e.Tag() == "min" && e.Field() == "Username":
		return "Username must be at least 3 characters long"
	default:
		return fmt.Sprintf("Validation error: field '%s' failed validation '%s'", e.Field(), e.Tag())
	}
}

func sentinelStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, true
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenNotYetValid),
		errors.Is(err, apperrors.ErrInvalidSigningMethod),
		errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrUserIDNotFoundInContext):
		return http.StatusUnauthorized, true
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, true
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, true
	}
	return 0, false
}
