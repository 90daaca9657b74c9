package entities

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientQuantityError_Message(t *testing.T) {
	t.Parallel()

	err := &InsufficientQuantityError{ItemName: "padlock", Have: 1, Requested: 3}
	assert.Equal(t, "insufficient quantity of padlock: have 1, requested 3", err.Error())

	err.Suggestions = []string{"padlocks"}
	assert.Contains(t, err.Error(), "did you mean padlocks?")
}

func TestDomainErrors_Unwrap(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("admin remove: %w", &InsufficientBalanceError{Balance: 1500, Requested: 2000})

	var balanceErr *InsufficientBalanceError
	assert.True(t, errors.As(wrapped, &balanceErr))
	assert.Equal(t, int64(1500), balanceErr.Balance)

	var validationErr *ValidationError
	assert.False(t, errors.As(wrapped, &validationErr))
	assert.Equal(t, "amount: must be positive", NewValidationError("amount", "must be positive").Error())
}
