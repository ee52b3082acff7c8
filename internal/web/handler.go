package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"storefront/internal/cart"
	"storefront/internal/domain"
	"storefront/internal/view"
)

// CatalogProvider exposes the in-memory catalogue cache to the handlers.
type CatalogProvider interface {
	Products() []domain.Product
	Categories() []domain.Category
}

// CartStore exposes the cart mutations and the persisted list.
type CartStore interface {
	Items(ctx context.Context) []domain.CartItem
	Add(ctx context.Context, item domain.CartItem) error
	RemoveAt(ctx context.Context, index int) error
	Clear(ctx context.Context) error
}

// Handler holds dependencies for the storefront HTTP handlers. Interaction
// endpoints mutate the filter state or the cart and respond with the affected
// surface re-rendered in full.
type Handler struct {
	catalog   CatalogProvider
	cart      CartStore
	state     *view.State
	views     *view.Renderer
	cartViews *cart.Renderer
	panel     *cart.Panel
	validate  *validator.Validate
	page      []byte
	apiKey    string
	apiBase   string
}

// NewHandler creates a storefront handler. The apiKey/apiBase pair is injected
// into the page markup on every page request.
func NewHandler(catalog CatalogProvider, cartStore CartStore, apiKey, apiBase string) *Handler {
	return &Handler{
		catalog:   catalog,
		cart:      cartStore,
		state:     view.NewState(),
		views:     view.NewRenderer(),
		cartViews: cart.NewRenderer(),
		panel:     &cart.Panel{},
		validate:  validator.New(),
		page:      shopPage,
		apiKey:    apiKey,
		apiBase:   apiBase,
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.WithError(err).Error("failed to encode JSON response")
		}
	}
}

// respondWithHTML renders a fragment to a buffer first so a template failure
// can still produce a clean error status.
func respondWithHTML(w http.ResponseWriter, code int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.WithError(err).Error("failed to render fragment")
		respondWithError(w, http.StatusInternalServerError, "Failed to render")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// --- Page ---

// Page serves the storefront page with the configuration meta tags
// (re)injected into the markup.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(InjectMeta(h.page, h.apiKey, h.apiBase))
}

// --- Catalogue surfaces ---

func (h *Handler) renderGrid(w http.ResponseWriter) {
	products := view.FilteredProducts(h.catalog.Products(), h.state.Filter())
	respondWithHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.views.RenderGrid(out, products)
	})
}

// Grid renders the product grid for the current filter state.
func (h *Handler) Grid(w http.ResponseWriter, r *http.Request) {
	h.renderGrid(w)
}

// SelectCategory records the clicked category option and responds with the
// re-rendered grid.
func (h *Handler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("category")
	if name == "" {
		respondWithError(w, http.StatusBadRequest, "Missing category value")
		return
	}
	h.state.SelectCategory(name)
	h.renderGrid(w)
}

// Search records the current search text and responds with the re-rendered
// grid. An empty query is valid; it clears the search filter.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	h.state.SetSearch(r.PostFormValue("q"))
	h.renderGrid(w)
}

// CategoryList renders the category option list with the active option
// highlighted.
func (h *Handler) CategoryList(w http.ResponseWriter, r *http.Request) {
	options := view.CategoryOptions(h.catalog.Categories(), h.catalog.Products())
	active := h.state.Filter().Category
	respondWithHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.views.RenderCategoryList(out, options, active)
	})
}

// ProductDetail renders the detail overlay for a single product.
func (h *Handler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")
	for _, p := range h.catalog.Products() {
		if p.ID == id {
			respondWithHTML(w, http.StatusOK, func(out io.Writer) error {
				return h.views.RenderDetail(out, p)
			})
			return
		}
	}
	respondWithError(w, http.StatusNotFound, "Product not found")
}

// --- Cart surfaces ---

// CartAddInput defines the expected input for adding a cart line item: the
// snapshot the buy action captured from the rendered card.
type CartAddInput struct {
	Name  string  `validate:"required,max=255"`
	Price float64 `validate:"gte=0"`
	Image string  `validate:"omitempty,max=2048"`
}

// AddCartItem appends a line item to the cart, opens the inline panel and
// responds with the re-rendered panel fragment.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	price, err := strconv.ParseFloat(r.PostFormValue("price"), 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid price value")
		return
	}
	input := CartAddInput{
		Name:  r.PostFormValue("name"),
		Price: price,
		Image: r.PostFormValue("image"),
	}
	if err := h.validate.Struct(input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}
	item := domain.CartItem{Name: input.Name, Price: input.Price, Image: input.Image}
	if err := h.cart.Add(r.Context(), item); err != nil {
		log.WithError(err).Error("failed to add cart item")
		respondWithError(w, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}
	h.panel.Open()
	h.renderPanel(w, r, http.StatusCreated)
}

// RemoveCartItem removes the line item at the given positional index. A
// malformed or out-of-range index is a no-op: the persisted list is left
// intact and the current panel state is returned.
func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		log.WithField("index", chi.URLParam(r, "index")).Warn("ignoring cart removal with malformed index")
		h.renderPanel(w, r, http.StatusOK)
		return
	}
	if err := h.cart.RemoveAt(r.Context(), index); err != nil {
		log.WithError(err).Error("failed to remove cart item")
		respondWithError(w, http.StatusInternalServerError, "Failed to remove item from cart")
		return
	}
	h.renderPanel(w, r, http.StatusOK)
}

// ClearCart empties the cart and responds with the re-rendered panel.
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context()); err != nil {
		log.WithError(err).Error("failed to clear cart")
		respondWithError(w, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	h.renderPanel(w, r, http.StatusOK)
}

// CartPage renders the standalone cart page surface.
func (h *Handler) CartPage(w http.ResponseWriter, r *http.Request) {
	items := h.cart.Items(r.Context())
	respondWithHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.cartViews.RenderPage(out, items)
	})
}

// CartPanel renders the inline panel surface with its current visibility.
func (h *Handler) CartPanel(w http.ResponseWriter, r *http.Request) {
	h.renderPanel(w, r, http.StatusOK)
}

// CartModal rebuilds the cart modal surface.
func (h *Handler) CartModal(w http.ResponseWriter, r *http.Request) {
	items := h.cart.Items(r.Context())
	respondWithHTML(w, http.StatusOK, func(out io.Writer) error {
		return h.cartViews.RenderModal(out, items)
	})
}

// TogglePanel flips the panel's visibility and responds with the re-rendered
// panel so it is never shown with stale content.
func (h *Handler) TogglePanel(w http.ResponseWriter, r *http.Request) {
	h.panel.Toggle()
	h.renderPanel(w, r, http.StatusOK)
}

func (h *Handler) renderPanel(w http.ResponseWriter, r *http.Request, code int) {
	items := h.cart.Items(r.Context())
	respondWithHTML(w, code, func(out io.Writer) error {
		return h.cartViews.RenderPanel(out, items, h.panel.IsOpen())
	})
}

// --- Route Registration ---

// RegisterRoutes sets up the storefront HTTP routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Page)
	r.Get("/shop", h.Page)
	r.Get("/shop.html", h.Page)

	r.Route("/fragments", func(r chi.Router) {
		r.Get("/grid", h.Grid)
		r.Get("/categories", h.CategoryList)
		r.Get("/products/{productId}", h.ProductDetail)
		r.Get("/cart/panel", h.CartPanel)
		r.Get("/cart/modal", h.CartModal)
	})

	r.Route("/filters", func(r chi.Router) {
		r.Post("/category", h.SelectCategory)
		r.Post("/search", h.Search)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.CartPage)
		r.Post("/items", h.AddCartItem)
		r.Delete("/items", h.ClearCart)
		r.Delete("/items/{index}", h.RemoveCartItem)
		r.Post("/panel/toggle", h.TogglePanel)
	})
}
