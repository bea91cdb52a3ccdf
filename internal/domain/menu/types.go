package menu

import (
	"fmt"

	"barista-cafe-api/internal/pkg/errs"
)

var (
	ErrInvalidCategory = errs.New("invalid menu category")
	ErrNegativePrice   = errs.New("price must not be negative")
)

type Category string

const (
	CategoryBreakfast Category = "breakfast"
	CategoryCoffee    Category = "coffee"
	CategoryDessert   Category = "dessert"
	CategoryBeverage  Category = "beverage"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryBreakfast, CategoryCoffee, CategoryDessert, CategoryBeverage:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Price is held in cents to avoid float rounding.
type Price struct {
	cents int64
}

func NewPrice(cents int64) (Price, error) {
	if cents < 0 {
		return Price{}, ErrNegativePrice
	}
	return Price{cents: cents}, nil
}

func (p Price) Cents() int64 { return p.cents }

// String renders the price with two decimals, e.g. "12.50".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}
