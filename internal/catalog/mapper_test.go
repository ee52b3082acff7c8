package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAPIProduct_FullRecord(t *testing.T) {
	raw := RawProduct{
		ID:          42,
		Name:        "Red Sneaker",
		Description: "A bright red sneaker",
		Price:       json.RawMessage(`19.5`),
		CategoryID:  3,
		ImageURLs:   []string{"https://img.example/sneaker.jpg", "https://img.example/sneaker2.jpg"},
	}

	p := MapAPIProduct(raw, "Shoes")

	assert.Equal(t, "42", p.ID)
	assert.Equal(t, "Red Sneaker", p.Title)
	assert.Equal(t, "A bright red sneaker", p.Description)
	assert.Equal(t, "$19.50", p.Price)
	assert.Equal(t, "Shoes", p.Category)
	assert.Equal(t, []string{DefaultColorKey}, p.Colors)
	assert.Equal(t, DefaultColorKey, p.DefaultColor)
	assert.Equal(t, "https://img.example/sneaker.jpg", p.Images[DefaultColorKey])
	assert.Equal(t, "https://img.example/sneaker.jpg", p.DefaultImage())
}

func TestMapAPIProduct_MalformedRecords(t *testing.T) {
	tests := []struct {
		name      string
		raw       RawProduct
		wantTitle string
		wantPrice string
		wantImage string
	}{
		{
			name:      "missing everything",
			raw:       RawProduct{},
			wantTitle: "Untitled",
			wantPrice: "$0.00",
			wantImage: "",
		},
		{
			name:      "price as numeric string",
			raw:       RawProduct{Name: "Mug", Price: json.RawMessage(`"9.99"`)},
			wantTitle: "Mug",
			wantPrice: "$9.99",
			wantImage: "",
		},
		{
			name:      "price as garbage string",
			raw:       RawProduct{Name: "Mug", Price: json.RawMessage(`"not-a-price"`)},
			wantTitle: "Mug",
			wantPrice: "$0.00",
			wantImage: "",
		},
		{
			name:      "price as null",
			raw:       RawProduct{Name: "Mug", Price: json.RawMessage(`null`)},
			wantTitle: "Mug",
			wantPrice: "$0.00",
			wantImage: "",
		},
		{
			name:      "empty image list",
			raw:       RawProduct{Name: "Mug", Price: json.RawMessage(`5`), ImageURLs: []string{}},
			wantTitle: "Mug",
			wantPrice: "$5.00",
			wantImage: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := MapAPIProduct(tc.raw, "")
			assert.Equal(t, tc.wantTitle, p.Title)
			assert.Equal(t, tc.wantPrice, p.Price)
			assert.Equal(t, tc.wantImage, p.Images[DefaultColorKey])
			require.NotNil(t, p.Images)
			assert.Equal(t, "", p.Category)
		})
	}
}

func TestMapAPIProduct_PriceRoundTrip(t *testing.T) {
	raw := RawProduct{Name: "Mug", Price: json.RawMessage(`9.99`)}
	p := MapAPIProduct(raw, "Kitchen")
	assert.InDelta(t, 9.99, p.PriceValue(), 0.0001)
}

func TestMapAPIProduct_NullPriceJSON(t *testing.T) {
	// A record decoded from a payload without a price field carries a nil
	// RawMessage; mapping must still be total.
	var raw RawProduct
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "name": "Hat"}`), &raw))
	p := MapAPIProduct(raw, "Hats")
	assert.Equal(t, "$0.00", p.Price)
	assert.Equal(t, "7", p.ID)
}
