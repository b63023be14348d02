package commands

import (
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/errs"
)

// storeErr classifies repository failures into the engine taxonomy.
func storeErr(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case infra.IsNotFound(err):
		return errs.Mark(errs.Wrap(err, what), errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey),
		infra.IsKind(err, infra.KindForeignKeyViolated),
		infra.IsKind(err, infra.KindLockTimeout):
		return errs.Mark(errs.Wrap(err, what), errs.ErrConflict)
	default:
		return errs.Wrap(err, what)
	}
}

// fail tags a domain error with its taxonomy class.
func fail(err error, class error) error {
	return errs.Mark(err, class)
}
