package handlers

import (
	"errors"
	"fmt"
	"testing"

	"catalog/internal/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         apperrors.NotFound("Product not found with term: %s", "x"),
			wantStatus:  fiber.StatusNotFound,
			wantMessage: "Product not found with term: x",
		},
		{
			name:        "wrapped conflict keeps detail",
			err:         fmt.Errorf("create: %w", apperrors.Conflict("Key (slug)=(x) already exists.", nil)),
			wantStatus:  fiber.StatusConflict,
			wantMessage: "Key (slug)=(x) already exists.",
		},
		{
			name:        "internal is opaque",
			err:         apperrors.Internal(errors.New("connection refused")),
			wantStatus:  fiber.StatusInternalServerError,
			wantMessage: apperrors.InternalMessage,
		},
		{
			name:        "unclassified is opaque",
			err:         errors.New("boom"),
			wantStatus:  fiber.StatusInternalServerError,
			wantMessage: apperrors.InternalMessage,
		},
		{
			name:        "request error",
			err:         &RequestError{Message: "Validation failed"},
			wantStatus:  fiber.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "fiber error keeps code",
			err:         fiber.ErrMethodNotAllowed,
			wantStatus:  fiber.StatusMethodNotAllowed,
			wantMessage: "Method Not Allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := render(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, body["message"])
		})
	}
}
