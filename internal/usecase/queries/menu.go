package queries

import (
	"context"

	"barista-cafe-api/internal/usecase/shared"
)

type MenuReadStore interface {
	ListAll(ctx context.Context) ([]*MenuItemView, error)
}

type MenuQueries interface {
	List(ctx context.Context) ([]*MenuItemView, error)
}

type menuQueriesImpl struct {
	repo MenuReadStore
}

func NewMenuQueries(repo MenuReadStore) MenuQueries {
	return &menuQueriesImpl{repo: repo}
}

func (q *menuQueriesImpl) List(ctx context.Context) (items []*MenuItemView, err error) {
	ctx, span := startSpan(ctx, "MenuQueries.List")
	defer func() { endSpan(span, err) }()

	items, err = q.repo.ListAll(ctx)
	if err != nil {
		return nil, shared.MarkStorageErr(err, nil)
	}
	return items, nil
}
