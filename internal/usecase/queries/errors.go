package queries

import (
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/errs"
)

func readErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case infra.IsNotFound(err):
		return errs.Mark(errs.Wrap(err, what), errs.ErrNotFound)
	default:
		return errs.Wrap(err, what)
	}
}
