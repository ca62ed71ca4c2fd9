package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("order", "6f1c")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "6f1c", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 6f1c", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("order", "6f1c", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 6f1c (cause: connection reset)",
			err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown token")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: unknown token)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("bounded range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 0, err.Value)
		assert.Equal(t, "value is out of range: quantity is 0, min value is 1, max value is 99", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("unbounded above", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("unit_price_in_cents", int64(-5), 0, nil)

		assert.Equal(t, "value is out of range: unit_price_in_cents is -5, min value is 0", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("negative amount")
		err := errs.NewValueIsOutOfRangeErrorWithCause("discount_in_cents", -1, 0, nil, cause)

		assert.Equal(t,
			"value is out of range: discount_in_cents is -1, min value is 0 (cause: negative amount)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "pad\nthai", 0, 10)

		assert.Contains(t, err.Error(), "pad thai")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")

	assert.Equal(t, "value is required: name", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("name", errors.New("blank"))
	assert.Equal(t, "value is required: name (cause: blank)", withCause.Error())
}

func TestIsValidationError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"invalid", errs.NewValueIsInvalidError("x"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("x", -1, 0, nil), true},
		{"required", errs.NewValueIsRequiredError("x"), true},
		{"wrapped", fmt.Errorf("create order: %w", errs.NewValueIsRequiredError("x")), true},
		{"joined", errors.Join(errors.New("other"), errs.NewValueIsInvalidError("x")), true},
		{"not found", errs.NewObjectNotFoundError("order", "1"), false},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.IsValidationError(tc.err))
		})
	}
}
