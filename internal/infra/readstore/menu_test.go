//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"barista-cafe-api/internal/domain/menu"
	"barista-cafe-api/internal/infra"
	"barista-cafe-api/internal/infra/readstore"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/tests/common/builder"
	readstoremock "barista-cafe-api/tests/mock/readstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMenuReadStore_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped to views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockMenuReadQueries(ctrl)
		espresso := builder.NewMenuItemBuilder().WithName("Espresso").WithPriceCents(350)
		scone := builder.NewMenuItemBuilder().WithName("Scone").WithCategory(menu.CategoryDessert).AsRecommended()
		mockQueries.EXPECT().ListMenuItems(ctx, gomock.Any()).
			Return([]sqlc.ListMenuItemsRow{espresso.BuildInfra(), scone.BuildInfra()}, nil)

		items, err := readstore.NewMenuReadStore(mockQueries, &mockDBTX{}).ListAll(ctx)

		require.NoError(t, err)
		assert.Equal(t, espresso.BuildView(), items[0])
		assert.Equal(t, scone.BuildView(), items[1])
		assert.Equal(t, "3.50", items[0].Price.String())
	})

	t.Run("error: unknown category in row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockMenuReadQueries(ctrl)
		row := builder.NewMenuItemBuilder().BuildInfra()
		row.Category = "soup"
		mockQueries.EXPECT().ListMenuItems(ctx, gomock.Any()).Return([]sqlc.ListMenuItemsRow{row}, nil)

		items, err := readstore.NewMenuReadStore(mockQueries, &mockDBTX{}).ListAll(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, items)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockMenuReadQueries(ctrl)
		mockQueries.EXPECT().ListMenuItems(ctx, gomock.Any()).Return(nil, errDBConnectionLost)

		_, err := readstore.NewMenuReadStore(mockQueries, &mockDBTX{}).ListAll(ctx)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
