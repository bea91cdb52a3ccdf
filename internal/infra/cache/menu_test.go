//go:build unit

package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barista-cafe-api/internal/infra/cache"
	"barista-cafe-api/internal/usecase/queries"
	"barista-cafe-api/tests/common/builder"
	queriesmock "barista-cafe-api/tests/mock/queries"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMenuStore_ListAll(t *testing.T) {
	items := []*queries.MenuItemView{builder.NewMenuItemBuilder().BuildView()}

	t.Run("success: no client reads straight through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := queriesmock.NewMockMenuReadStore(ctrl)
		next.EXPECT().ListAll(gomock.Any()).Return(items, nil).Times(2)

		store := cache.NewMenuStore(next, nil, time.Minute)
		for range 2 {
			got, err := store.ListAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, items, got)
		}
	})

	t.Run("success: unreachable redis degrades to the database", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := queriesmock.NewMockMenuReadStore(ctrl)
		next.EXPECT().ListAll(gomock.Any()).Return(items, nil).Times(1)

		rdb := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		})
		t.Cleanup(func() { _ = rdb.Close() })

		ctx, hit := queries.WithCacheStatus(context.Background())
		got, err := cache.NewMenuStore(next, rdb, time.Minute).ListAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, items, got)
		assert.False(t, *hit)
	})

	t.Run("error: database failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := queriesmock.NewMockMenuReadStore(ctrl)
		dbErr := errors.New("database connection lost")
		next.EXPECT().ListAll(gomock.Any()).Return(nil, dbErr).Times(1)

		_, err := cache.NewMenuStore(next, nil, time.Minute).ListAll(context.Background())

		assert.ErrorIs(t, err, dbErr)
	})
}
