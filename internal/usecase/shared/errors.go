package shared

import (
	"barista-cafe-api/internal/infra"
	"barista-cafe-api/internal/pkg/errs"
)

// MarkStorageErr attaches the usecase sentinel matching a repository error kind.
// Errors that did not come from the repository layer are returned unchanged.
func MarkStorageErr(err error, notFound error) error {
	kind, ok := infra.KindOf(err)
	if !ok {
		return err
	}
	switch {
	case kind == infra.KindNotFound && notFound != nil:
		return errs.Mark(err, notFound)
	case kind == infra.KindTimeout:
		return errs.Mark(err, errs.ErrStorageTimeout)
	default:
		return errs.Mark(err, errs.ErrStorageFailure)
	}
}
