package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_HTTPStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"not found", NewNotFoundError("User", "ghost"), fiber.StatusNotFound},
		{"validation", NewValidationError("bad page"), fiber.StatusBadRequest},
		{"unauthorized", NewUnauthorizedError("nope"), fiber.StatusUnauthorized},
		{"internal", NewInternalError(errors.New("db down")), fiber.StatusInternalServerError},
		{"unknown code", &AppError{Code: "SOMETHING_ELSE"}, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := NewInternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRespondWithError_WrappedAppError(t *testing.T) {
	t.Parallel()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		wrapped := fmt.Errorf("listing: %w", NewNotFoundError("User", 7))
		return RespondWithError(c, fiber.StatusNotFound, wrapped)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var got ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))

	assert.Equal(t, CodeNotFound, got.Code)
	assert.Equal(t, "User 7 not found", got.Error)
}
