package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain"
)

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "1", Title: "Red Sneaker", Description: "bright red", Category: "Shoes"},
		{ID: "2", Title: "Red Hat", Description: "a red hat", Category: "Hats"},
		{ID: "3", Title: "Blue Sneaker", Description: "deep blue", Category: "Shoes"},
		{ID: "4", Title: "Plain Mug", Description: "ceramic", Category: "Kitchen"},
	}
}

func TestFilteredProducts_AllWithEmptySearchReturnsFullListInOrder(t *testing.T) {
	all := sampleProducts()
	got := FilteredProducts(all, Filter{Category: AllCategories})
	require.Len(t, got, len(all))
	for i := range all {
		assert.Equal(t, all[i].ID, got[i].ID)
	}
}

func TestFilteredProducts_WhitespaceSearchMatchesEverything(t *testing.T) {
	got := FilteredProducts(sampleProducts(), Filter{Category: AllCategories, Search: "   "})
	assert.Len(t, got, 4)
}

func TestFilteredProducts_CategoryAndSearchCompose(t *testing.T) {
	// "Shoes" + "red" must keep the red sneaker and drop the red hat.
	got := FilteredProducts(sampleProducts(), Filter{Category: "Shoes", Search: "red"})
	require.Len(t, got, 1)
	assert.Equal(t, "Red Sneaker", got[0].Title)
}

func TestFilteredProducts_CategoryMatchIsCaseSensitive(t *testing.T) {
	got := FilteredProducts(sampleProducts(), Filter{Category: "shoes"})
	assert.Empty(t, got)
}

func TestFilteredProducts_SearchIsCaseInsensitiveOverTitleAndDescription(t *testing.T) {
	got := FilteredProducts(sampleProducts(), Filter{Category: AllCategories, Search: "CERAMIC"})
	require.Len(t, got, 1)
	assert.Equal(t, "Plain Mug", got[0].Title)

	got = FilteredProducts(sampleProducts(), Filter{Category: AllCategories, Search: "SNEAKER"})
	assert.Len(t, got, 2)
}

func TestFilteredProducts_ResultIsSubsetInInputOrder(t *testing.T) {
	got := FilteredProducts(sampleProducts(), Filter{Category: AllCategories, Search: "red"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestState_Transitions(t *testing.T) {
	st := NewState()
	assert.Equal(t, Filter{Category: AllCategories}, st.Filter())

	st.SelectCategory("Shoes")
	st.SetSearch("red")
	assert.Equal(t, Filter{Category: "Shoes", Search: "red"}, st.Filter())
}

func TestCategoryOptions_FromFetchedCategories(t *testing.T) {
	categories := []domain.Category{{ID: 1, Name: "Shoes"}, {ID: 2, Name: "Hats"}}
	options := CategoryOptions(categories, sampleProducts())
	assert.Equal(t, []string{AllCategories, "Shoes", "Hats"}, options)
}

func TestCategoryOptions_FallsBackToDistinctProductCategories(t *testing.T) {
	products := append(sampleProducts(), domain.Product{ID: "5", Title: "Nameless", Category: ""})
	options := CategoryOptions(nil, products)
	// Distinct, first-seen order, empty names dropped.
	assert.Equal(t, []string{AllCategories, "Shoes", "Hats", "Kitchen"}, options)
}
