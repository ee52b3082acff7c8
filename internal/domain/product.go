package domain

import (
	"strconv"
	"strings"
)

// Category represents a product category exactly as the public catalogue API
// returns it. Categories are read-only and refreshed once per process start.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is the display-ready view-model derived from a raw API record.
// It is immutable once mapped; the Price field is a formatted currency string
// (e.g. "$9.99") rather than a number because every rendering surface consumes
// it as text.
type Product struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Price         string            `json:"price"`
	OldPrice      string            `json:"old_price"`
	Badge         string            `json:"badge"`
	Category      string            `json:"category"`
	Colors        []string          `json:"colors"`
	DefaultColor  string            `json:"default_color"`
	Images        map[string]string `json:"images"`
	PromoCode     string            `json:"promo_code"`
	PromoDiscount string            `json:"promo_discount"`
}

// DefaultImage returns the image URL for the product's default color.
// It resolves to "" when the source record carried no images; the rendered
// image element degrades to a broken-image placeholder in that case.
func (p Product) DefaultImage() string {
	return p.Images[p.DefaultColor]
}

// PriceValue parses the numeric amount back out of the formatted price string.
// The cart captures this number as a snapshot when a product is bought.
// A price that does not parse yields 0.
func (p Product) PriceValue() float64 {
	var b strings.Builder
	for _, r := range p.Price {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// CartItem is one persisted "add to cart" action. It deliberately carries no
// product identifier and no quantity: adding the same product twice yields two
// line items, and removal is strictly by position in the persisted list.
type CartItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}
