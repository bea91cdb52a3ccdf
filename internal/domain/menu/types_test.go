//go:build unit

package menu_test

import (
	"testing"

	"barista-cafe-api/internal/domain/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	for _, s := range []string{"breakfast", "coffee", "dessert", "beverage"} {
		t.Run(s, func(t *testing.T) {
			c, err := menu.NewCategory(s)
			require.NoError(t, err)
			assert.Equal(t, s, c.String())
		})
	}

	t.Run("unknown category", func(t *testing.T) {
		_, err := menu.NewCategory("Breakfast")
		assert.ErrorIs(t, err, menu.ErrInvalidCategory)
	})
}

func TestPrice(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{cents: 0, want: "0.00"},
		{cents: 590, want: "5.90"},
		{cents: 725, want: "7.25"},
		{cents: 1250, want: "12.50"},
		{cents: 1800, want: "18.00"},
	}
	for _, tc := range cases {
		p, err := menu.NewPrice(tc.cents)
		require.NoError(t, err)
		assert.Equal(t, tc.want, p.String())
		assert.Equal(t, tc.cents, p.Cents())
	}

	_, err := menu.NewPrice(-1)
	assert.ErrorIs(t, err, menu.ErrNegativePrice)
}
