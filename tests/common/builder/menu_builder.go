//go:build unit || e2e

package builder

import (
	"time"

	"barista-cafe-api/internal/domain/menu"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MenuItemBuilder struct {
	ID            uuid.UUID
	Name          string
	Description   string
	PriceCents    int64
	Category      menu.Category
	IsAvailable   bool
	IsRecommended bool
	CreatedAt     time.Time
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:          uuid.New(),
		Name:        "Latte",
		Description: "Smooth espresso with steamed milk",
		PriceCents:  750,
		Category:    menu.CategoryCoffee,
		IsAvailable: true,
		CreatedAt:   time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *MenuItemBuilder) WithName(name string) *MenuItemBuilder {
	b.Name = name
	return b
}

func (b *MenuItemBuilder) WithPriceCents(cents int64) *MenuItemBuilder {
	b.PriceCents = cents
	return b
}

func (b *MenuItemBuilder) WithCategory(c menu.Category) *MenuItemBuilder {
	b.Category = c
	return b
}

func (b *MenuItemBuilder) AsRecommended() *MenuItemBuilder {
	b.IsRecommended = true
	return b
}

func (b *MenuItemBuilder) BuildView() *queries.MenuItemView {
	price, _ := menu.NewPrice(b.PriceCents)
	return &queries.MenuItemView{
		ID:            b.ID,
		Name:          b.Name,
		Description:   b.Description,
		Price:         price,
		Category:      b.Category,
		IsAvailable:   b.IsAvailable,
		IsRecommended: b.IsRecommended,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *MenuItemBuilder) BuildInfra() sqlc.ListMenuItemsRow {
	return sqlc.ListMenuItemsRow{
		ID:            b.ID,
		Name:          b.Name,
		Description:   pgtype.Text{String: b.Description, Valid: b.Description != ""},
		PriceCents:    b.PriceCents,
		Category:      b.Category.String(),
		IsAvailable:   b.IsAvailable,
		IsRecommended: b.IsRecommended,
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}
