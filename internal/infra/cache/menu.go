package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"barista-cafe-api/internal/domain/menu"
	"barista-cafe-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const MenuKey = "menu:all"

// MenuStore is a read-through cache in front of the menu read store.
// Redis errors degrade to a direct read; they are never returned.
type MenuStore struct {
	next queries.MenuReadStore
	rdb  *redis.Client
	ttl  time.Duration
}

func NewMenuStore(next queries.MenuReadStore, rdb *redis.Client, ttl time.Duration) *MenuStore {
	return &MenuStore{next: next, rdb: rdb, ttl: ttl}
}

func (s *MenuStore) ListAll(ctx context.Context) ([]*queries.MenuItemView, error) {
	if s.rdb == nil {
		return s.next.ListAll(ctx)
	}

	raw, err := s.rdb.Get(ctx, MenuKey).Bytes()
	switch {
	case err == nil:
		items, decodeErr := decodeMenu(raw)
		if decodeErr == nil {
			queries.ReportCacheHit(ctx, true)
			return items, nil
		}
		slog.WarnContext(ctx, "discarding undecodable menu cache entry", "error", decodeErr.Error())
	case !errors.Is(err, redis.Nil):
		slog.WarnContext(ctx, "menu cache read failed", "error", err.Error())
	}

	items, err := s.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	queries.ReportCacheHit(ctx, false)

	if payload, encErr := encodeMenu(items); encErr == nil {
		if setErr := s.rdb.Set(ctx, MenuKey, payload, s.ttl).Err(); setErr != nil {
			slog.WarnContext(ctx, "menu cache write failed", "error", setErr.Error())
		}
	}
	return items, nil
}

type cachedMenuItem struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PriceCents    int64     `json:"price_cents"`
	Category      string    `json:"category"`
	IsAvailable   bool      `json:"is_available"`
	IsRecommended bool      `json:"is_recommended"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func encodeMenu(items []*queries.MenuItemView) ([]byte, error) {
	out := make([]cachedMenuItem, 0, len(items))
	for _, it := range items {
		out = append(out, cachedMenuItem{
			ID:            it.ID,
			Name:          it.Name,
			Description:   it.Description,
			PriceCents:    it.Price.Cents(),
			Category:      it.Category.String(),
			IsAvailable:   it.IsAvailable,
			IsRecommended: it.IsRecommended,
			CreatedAt:     it.CreatedAt,
			UpdatedAt:     it.UpdatedAt,
		})
	}
	return json.Marshal(out)
}

func decodeMenu(raw []byte) ([]*queries.MenuItemView, error) {
	var cached []cachedMenuItem
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}

	items := make([]*queries.MenuItemView, 0, len(cached))
	for _, c := range cached {
		price, err := menu.NewPrice(c.PriceCents)
		if err != nil {
			return nil, err
		}
		category, err := menu.NewCategory(c.Category)
		if err != nil {
			return nil, err
		}
		items = append(items, &queries.MenuItemView{
			ID:            c.ID,
			Name:          c.Name,
			Description:   c.Description,
			Price:         price,
			Category:      category,
			IsAvailable:   c.IsAvailable,
			IsRecommended: c.IsRecommended,
			CreatedAt:     c.CreatedAt,
			UpdatedAt:     c.UpdatedAt,
		})
	}
	return items, nil
}
