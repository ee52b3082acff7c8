package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

// DefaultColorKey is the single color entry every mapped product carries; the
// public API does not expose per-color imagery.
const DefaultColorKey = "default"

// RawProduct is the API-native product shape. It is never mutated; records are
// consumed only by MapAPIProduct. Price is kept raw because the API has been
// observed to return both JSON numbers and numeric strings.
type RawProduct struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       json.RawMessage `json:"price"`
	CategoryID  int64           `json:"category_id"`
	ImageURLs   []string        `json:"image_urls"`
}

// MapAPIProduct converts a raw API record into the display-ready view-model.
// It is pure and total over malformed or partial input: a missing name becomes
// "Untitled", a missing or non-numeric price becomes "$0.00", and missing
// images yield an empty default image URL. The remote API is an external
// boundary and is not fully trusted.
func MapAPIProduct(raw RawProduct, categoryName string) domain.Product {
	image := ""
	if len(raw.ImageURLs) > 0 {
		image = raw.ImageURLs[0]
	}
	title := raw.Name
	if title == "" {
		title = "Untitled"
	}
	return domain.Product{
		ID:           strconv.FormatInt(raw.ID, 10),
		Title:        title,
		Description:  raw.Description,
		Price:        formatPrice(raw.Price),
		Category:     categoryName,
		Colors:       []string{DefaultColorKey},
		DefaultColor: DefaultColorKey,
		Images:       map[string]string{DefaultColorKey: image},
	}
}

func formatPrice(raw json.RawMessage) string {
	if v, ok := priceValue(raw); ok {
		return fmt.Sprintf("$%.2f", v)
	}
	return "$0.00"
}

func priceValue(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return v, true
		}
	}
	return 0, false
}
