package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cause := errors.New("connection reset")

	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound("Product not found with term: %s", "abc"), want: KindNotFound},
		{name: "conflict", err: Conflict("Key (slug)=(x) already exists.", cause), want: KindConflict},
		{name: "internal", err: Internal(cause), want: KindInternal},
		{name: "wrapped conflict", err: fmt.Errorf("update: %w", Conflict("dup", cause)), want: KindConflict},
		{name: "plain error", err: cause, want: KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: password authentication failed")
	err := Internal(cause)

	assert.Equal(t, InternalMessage, err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestNotFoundCarriesTerm(t *testing.T) {
	err := NotFound("Product not found with term: %s", "my-shirt")

	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.Contains(t, err.Error(), "my-shirt")
}
