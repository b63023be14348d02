//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parking-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	cause := errors.New("space already occupied")

	t.Run("marked error matches both mark and cause", func(t *testing.T) {
		err := errs.Mark(cause, errs.ErrInvalidState)
		assert.True(t, errs.Is(err, errs.ErrInvalidState))
		assert.True(t, errs.Is(err, cause))
		assert.False(t, errs.Is(err, errs.ErrNoCapacity))
	})

	t.Run("wrapping keeps the mark", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, errs.ErrConflict), "delete lot")
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Contains(t, err.Error(), "delete lot")
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrAlreadyPaid, errs.Mark(nil, errs.ErrAlreadyPaid))
	})

	t.Run("taxonomy entries are distinct", func(t *testing.T) {
		all := []error{
			errs.ErrConflict, errs.ErrNoCapacity, errs.ErrAlreadyParked, errs.ErrNotParked,
			errs.ErrInvalidInterval, errs.ErrInvalidState, errs.ErrAlreadyPaid, errs.ErrAmountMismatch,
			errs.ErrNotFound, errs.ErrValidation, errs.ErrForbidden, errs.ErrUnauthorized,
		}
		for i := range all {
			for j := range all {
				if i != j {
					assert.False(t, errs.Is(all[i], all[j]), "%v vs %v", all[i], all[j])
				}
			}
		}
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "noop"))
	assert.NoError(t, errs.Wrapf(nil, "noop %d", 1))
}
