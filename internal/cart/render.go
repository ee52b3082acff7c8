package cart

import (
	"fmt"
	"html/template"
	"io"

	"storefront/internal/domain"
)

// Every cart surface re-derives its rows from the same persisted list, one row
// per line item in insertion order. Remove controls carry the row's current
// positional index as a data attribute; indices shift after removals, so they
// are re-emitted on every render and never survive a mutation.

const pageTemplate = `<ul id="cartItems">
{{if .Items}}{{range .Items}}<li class="cart-item">
  <img src="{{.Image}}" alt="{{.Name}}">
  <div class="cart-item-info"><h4>{{.Name}}</h4><p class="cart-item-price">{{.Price}}</p></div>
  <button class="remove-button" data-index="{{.Index}}">Remove</button>
</li>
{{end}}{{else}}<li>Your cart is empty.</li>
{{end}}</ul>
<p id="cartTotal">{{.Total}}</p>`

const panelTemplate = `<div id="cartPanel" class="cart-panel{{if .Open}} active{{end}}">
<ul id="inlineCartItems">
{{if .Items}}{{range .Items}}<li class="cart-item">
  <img src="{{.Image}}" alt="{{.Name}}">
  <div class="cart-item-info"><strong>{{.Name}}</strong><p>{{.Price}}</p></div>
  <button class="remove-button" data-index="{{.Index}}">x</button>
</li>
{{end}}{{else}}<li>Your cart is empty.</li>
{{end}}</ul>
<p id="inlineCartTotal">{{.Total}}</p>
</div>`

const modalTemplate = `<div id="cart-modal-bg" class="modal-bg" data-close-on-background>
<div class="modal-card">
  <span id="cart-modal-close" class="modal-close" title="Close">&times;</span>
  <h2>Your Cart</h2>
  {{if .Items}}<table class="cart-table">
    <thead><tr><th>Image</th><th>Name</th><th>Price</th><th>Remove</th></tr></thead>
    <tbody>
    {{range .Items}}<tr>
      <td><img src="{{.Image}}" alt="{{.Name}}"></td>
      <td>{{.Name}}</td>
      <td>{{.Price}}</td>
      <td><button class="remove-button" data-index="{{.Index}}">Remove</button></td>
    </tr>
    {{end}}</tbody>
  </table>
  {{else}}<p>Your cart is empty.</p>
  {{end}}<p class="cart-total">{{.Total}}</p>
  <button class="clear-button">Clear All</button>
</div>
</div>`

// Row is one rendered cart line.
type Row struct {
	Index int
	Name  string
	Price string
	Image string
}

type surfaceData struct {
	Items []Row
	Total string
	Open  bool
}

// Renderer renders the three cart presentation surfaces — the standalone cart
// page, the inline slide-out panel and the cart modal — from the same item
// list. Each render rebuilds its surface wholesale.
type Renderer struct {
	page  *template.Template
	panel *template.Template
	modal *template.Template
}

// NewRenderer parses the cart surface templates.
func NewRenderer() *Renderer {
	return &Renderer{
		page:  template.Must(template.New("cartPage").Parse(pageTemplate)),
		panel: template.Must(template.New("cartPanel").Parse(panelTemplate)),
		modal: template.Must(template.New("cartModal").Parse(modalTemplate)),
	}
}

// RenderPage writes the standalone cart page surface.
func (r *Renderer) RenderPage(w io.Writer, items []domain.CartItem) error {
	return r.page.Execute(w, buildSurface(items, false))
}

// RenderPanel writes the inline panel surface with the given visibility.
func (r *Renderer) RenderPanel(w io.Writer, items []domain.CartItem, open bool) error {
	return r.panel.Execute(w, buildSurface(items, open))
}

// RenderModal rebuilds the cart modal surface.
func (r *Renderer) RenderModal(w io.Writer, items []domain.CartItem) error {
	return r.modal.Execute(w, buildSurface(items, false))
}

// FormatTotal formats the summed line item prices with exactly two decimal
// places. An empty cart yields "Total: $0.00".
func FormatTotal(items []domain.CartItem) string {
	return fmt.Sprintf("Total: $%.2f", Total(items))
}

func buildSurface(items []domain.CartItem, open bool) surfaceData {
	rows := make([]Row, 0, len(items))
	for i, item := range items {
		rows = append(rows, Row{
			Index: i,
			Name:  item.Name,
			Price: fmt.Sprintf("$%.2f", item.Price),
			Image: item.Image,
		})
	}
	return surfaceData{Items: rows, Total: FormatTotal(items), Open: open}
}
