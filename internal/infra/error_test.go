//go:build unit

package infra_test

import (
	"errors"
	"testing"

	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestRepositoryError(t *testing.T) {
	cause := errors.New("connection reset")
	err := infra.WrapRepoErr(infra.KindDBFailure, "insert lot", cause)

	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.False(t, infra.IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DB_FAILURE: insert lot")

	nf := infra.NotFound("lot")
	assert.True(t, infra.IsNotFound(nf))
	assert.True(t, infra.IsNotFound(errs.Wrap(nf, "load lot")), "kind survives wrapping")
	assert.Equal(t, "NOT_FOUND: lot", nf.Error())
}
