package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func renderableProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Title: "Red Sneaker", Description: "bright red", Price: "$19.50",
			Category: "Shoes", Colors: []string{"default"}, DefaultColor: "default",
			Images: map[string]string{"default": "sneaker.jpg"},
		},
		{
			ID: "2", Title: "Plain Mug", Description: "ceramic", Price: "$9.99",
			Category: "Kitchen", Colors: []string{"default"}, DefaultColor: "default",
			Images: map[string]string{"default": ""},
		},
	}
}

func TestRenderGrid_Idempotent(t *testing.T) {
	r := NewRenderer()
	products := renderableProducts()

	var first, second bytes.Buffer
	require.NoError(t, r.RenderGrid(&first, products))
	require.NoError(t, r.RenderGrid(&second, products))

	assert.Equal(t, first.String(), second.String())
	assert.Equal(t, 2, strings.Count(first.String(), `class="product-card"`))
}

func TestRenderGrid_OrderingAndSnapshotFields(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderGrid(&buf, renderableProducts()))
	out := buf.String()

	// Cards render in list order.
	assert.Less(t, strings.Index(out, `data-id="1"`), strings.Index(out, `data-id="2"`))
	// The buy form carries the cart snapshot: name, numeric price, image.
	assert.Contains(t, out, `name="name" value="Red Sneaker"`)
	assert.Contains(t, out, `name="price" value="19.50"`)
	assert.Contains(t, out, `name="image" value="sneaker.jpg"`)
	// A product without an image degrades to an empty src, not a crash.
	assert.Contains(t, out, `src=""`)
}

func TestRenderGrid_EmptyListRendersNoCards(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderGrid(&buf, nil))
	assert.NotContains(t, buf.String(), "product-card")
}

func TestRenderCategoryList_SingleActiveOption(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderCategoryList(&buf, []string{"All", "Shoes", "Hats"}, "Shoes"))
	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, `class="active"`))
	assert.Contains(t, out, `data-category="Shoes" class="active"`)
	assert.Equal(t, 3, strings.Count(out, "<li "))
}

func TestRenderDetail_SingleInstanceOverlay(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer
	require.NoError(t, r.RenderDetail(&buf, renderableProducts()[0]))
	out := buf.String()

	// The fixed element id makes a fresh render replace any open overlay.
	assert.Contains(t, out, `id="product-overlay"`)
	assert.Contains(t, out, `class="modal-close"`)
	assert.Contains(t, out, "data-close-on-background")
	assert.Contains(t, out, "Red Sneaker")
	assert.Contains(t, out, "$19.50")
}
