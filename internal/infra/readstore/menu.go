package readstore

import (
	"context"

	"barista-cafe-api/internal/domain/menu"
	"barista-cafe-api/internal/infra"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/pkg/pgconv"
	"barista-cafe-api/internal/usecase/queries"
)

type MenuReadQueries interface {
	ListMenuItems(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListMenuItemsRow, error)
}

type MenuReadStore struct {
	queries MenuReadQueries
	db      sqlc.DBTX
}

func NewMenuReadStore(queries MenuReadQueries, db sqlc.DBTX) *MenuReadStore {
	return &MenuReadStore{
		queries: queries,
		db:      db,
	}
}

// ListAll returns every menu item ordered by category then name, unavailable ones included.
func (r *MenuReadStore) ListAll(ctx context.Context) ([]*queries.MenuItemView, error) {
	rows, err := r.queries.ListMenuItems(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}

	items := make([]*queries.MenuItemView, 0, len(rows))
	for _, row := range rows {
		item, err := toMenuItemView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert menu item "+row.Name, err, infra.KindDBFailure)
		}
		items = append(items, item)
	}
	return items, nil
}

func toMenuItemView(row sqlc.ListMenuItemsRow) (*queries.MenuItemView, error) {
	price, err := menu.NewPrice(row.PriceCents)
	if err != nil {
		return nil, err
	}
	category, err := menu.NewCategory(row.Category)
	if err != nil {
		return nil, err
	}

	var description string
	if row.Description.Valid {
		description = row.Description.String
	}

	return &queries.MenuItemView{
		ID:            row.ID,
		Name:          row.Name,
		Description:   description,
		Price:         price,
		Category:      category,
		IsAvailable:   row.IsAvailable,
		IsRecommended: row.IsRecommended,
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
