package view

import (
	"html/template"
	"io"

	"storefront/internal/domain"
)

// The grid is always rendered in full: every state change replaces the prior
// markup wholesale instead of patching it. Color dots carry the alternate
// image URL as a data attribute, and the buy form carries the cart snapshot
// (display name, numeric price, currently displayed image) for that card.
const gridTemplate = `{{range .}}<div class="product-card" data-id="{{.ID}}">
  {{with .Badge}}<span class="badge">{{.}}</span>{{end}}
  <img src="{{.DefaultImage}}" alt="{{.Title}}" class="fade-img show" data-main-img>
  <h3 class="product-title">{{.Title}}</h3>
  <p class="description">{{.Description}}</p>
  <div class="color-dots">{{$p := .}}{{range .Colors}}<span class="color-dot" data-color="{{.}}" data-image="{{index $p.Images .}}"></span>{{end}}</div>
  <div class="price-row"><span class="price">{{.Price}}</span>{{with .OldPrice}}<span class="old-price">{{.}}</span>{{end}}</div>
  <form class="buy-form" method="post" action="/cart/items">
    <input type="hidden" name="name" value="{{.Title}}">
    <input type="hidden" name="price" value="{{printf "%.2f" .PriceValue}}">
    <input type="hidden" name="image" value="{{.DefaultImage}}">
    <button type="submit" class="buy-button">Buy Now</button>
  </form>
</div>
{{end}}`

const categoryListTemplate = `<ul id="category-list">{{range .Options}}<li data-category="{{.}}"{{if eq . $.Active}} class="active"{{end}}>{{.}}</li>{{end}}</ul>`

// The overlay renders under a fixed element id, so serving it again replaces
// any overlay already on the page; duplicates cannot stack. The close control
// and the background (but not the card itself) both dismiss it.
const detailTemplate = `<div id="product-overlay" class="modal-bg" data-close-on-background>
  <div class="modal-card">
    <span class="modal-close" title="Close">&times;</span>
    <img src="{{.DefaultImage}}" alt="{{.Title}}" class="fade-img show" data-modal-img>
    {{with .Badge}}<span class="badge">{{.}}</span>{{end}}
    <h3 class="product-title">{{.Title}}</h3>
    <p class="description">{{.Description}}</p>
    <div class="price-row"><span class="price">{{.Price}}</span>{{with .OldPrice}}<span class="old-price">{{.}}</span>{{end}}</div>
    <div class="color-dots">{{$p := .}}{{range .Colors}}<span class="color-dot" data-color="{{.}}" data-image="{{index $p.Images .}}"></span>{{end}}</div>
    <div class="promo"><span class="promo-code">{{.PromoCode}}</span><span class="promo-discount">{{.PromoDiscount}}</span></div>
    <form class="buy-form" method="post" action="/cart/items">
      <input type="hidden" name="name" value="{{.Title}}">
      <input type="hidden" name="price" value="{{printf "%.2f" .PriceValue}}">
      <input type="hidden" name="image" value="{{.DefaultImage}}">
      <button type="submit" class="buy-button">BUY +</button>
    </form>
  </div>
</div>`

// Renderer renders the catalogue surfaces: the product grid, the category
// option list and the single-product detail overlay. Rendering is idempotent;
// the same inputs always produce identical markup.
type Renderer struct {
	grid       *template.Template
	categories *template.Template
	detail     *template.Template
}

// NewRenderer parses the catalogue templates. It panics on a malformed
// template, which is a programming error.
func NewRenderer() *Renderer {
	return &Renderer{
		grid:       template.Must(template.New("grid").Parse(gridTemplate)),
		categories: template.Must(template.New("categories").Parse(categoryListTemplate)),
		detail:     template.Must(template.New("detail").Parse(detailTemplate)),
	}
}

// RenderGrid writes the full product grid for the given (already filtered)
// product list.
func (r *Renderer) RenderGrid(w io.Writer, products []domain.Product) error {
	return r.grid.Execute(w, products)
}

type categoryListData struct {
	Options []string
	Active  string
}

// RenderCategoryList writes the category option list. At most one option — the
// currently selected one — carries the active class.
func (r *Renderer) RenderCategoryList(w io.Writer, options []string, active string) error {
	return r.categories.Execute(w, categoryListData{Options: options, Active: active})
}

// RenderDetail writes the detail overlay for a single product.
func (r *Renderer) RenderDetail(w io.Writer, p domain.Product) error {
	return r.detail.Execute(w, p)
}
