package utils

import (
	"net/url"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListQuery_Defaults(t *testing.T) {
	f := ParseListQuery(url.Values{})

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPerPage, f.PerPage)
	assert.Equal(t, 0, f.Offset)
	assert.Empty(t, f.Search)
	assert.Empty(t, f.Filter)
}

func TestParseListQuery_PageAndOffset(t *testing.T) {
	values := url.Values{}
	values.Set("page", "3")
	values.Set("per_page", "10")

	f := ParseListQuery(values)

	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 10, f.PerPage)
	assert.Equal(t, 20, f.Offset)
}

func TestParseListQuery_PerPageCapped(t *testing.T) {
	values := url.Values{}
	values.Set("per_page", "1000")

	f := ParseListQuery(values)

	assert.Equal(t, MaxPerPage, f.PerPage)
}

func TestParseListQuery_InvalidValuesFallBack(t *testing.T) {
	values := url.Values{}
	values.Set("page", "abc")
	values.Set("per_page", "-5")

	f := ParseListQuery(values)

	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPerPage, f.PerPage)
}

func TestParseListQuery_OnlyListedFilters(t *testing.T) {
	values := url.Values{}
	values.Set("search", "golang")
	values.Set("location", "Москва")
	values.Set("employment_type", "full")
	values.Set("is_admin", "true")

	f := ParseListQuery(values, "location", "employment_type")

	assert.Equal(t, "golang", f.Search)
	assert.Equal(t, "Москва", f.Filter["location"])
	assert.Equal(t, "full", f.Filter["employment_type"])
	assert.NotContains(t, f.Filter, "is_admin")
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
	// Деление в uint64: большой total не ломается на 32-битном int.
	assert.Equal(t, 10995116278, TotalPages(1<<40, 100))
}

func TestValidationMessage(t *testing.T) {
	type creds struct {
		Username string `validate:"omitempty,min=3"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=6"`
	}

	firstError := func(t *testing.T, v creds) validator.FieldError {
		t.Helper()
		err := validator.New().Struct(v)
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		return verrs[0]
	}

	e := firstError(t, creds{Password: "password123"})
	assert.Equal(t, "Email and password are required", ValidationMessage(e))

	e = firstError(t, creds{Email: "not-an-email", Password: "password123"})
	assert.Equal(t, "Invalid email format", ValidationMessage(e))

	e = firstError(t, creds{Email: "a@b.test", Password: "123"})
	assert.Equal(t, "Password must be at least 6 characters long", ValidationMessage(e))

	e = firstError(t, creds{Username: "ab", Email: "a@b.test", Password: "password123"})
	assert.Equal(t, "Username must be at least 3 characters long", ValidationMessage(e))
}
