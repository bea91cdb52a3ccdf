package response

import (
	"time"

	"barista-cafe-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type MenuItemResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         string    `json:"price" example:"4.50"`
	Category      string    `json:"category" example:"coffee"`
	IsAvailable   bool      `json:"is_available"`
	IsRecommended bool      `json:"is_recommended"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromMenuItemViews(items []*queries.MenuItemView) ([]*MenuItemResponse, error) {
	out := make([]*MenuItemResponse, 0, len(items))
	for _, it := range items {
		var resp MenuItemResponse
		if err := copier.CopyWithOption(&resp, it, viewCopyOption); err != nil {
			return nil, err
		}
		out = append(out, &resp)
	}
	return out, nil
}
