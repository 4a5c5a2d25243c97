package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/fjod/go_storefront/internal/filter"
	"github.com/fjod/go_storefront/internal/ui"
)

type ProductHandler struct {
	ctrl    *ui.Controller
	catalog ui.Catalog
}

func NewProductHandler(ctrl *ui.Controller, catalog ui.Catalog) *ProductHandler {
	return &ProductHandler{
		ctrl:    ctrl,
		catalog: catalog,
	}
}

// List serves the filtered, sorted product grid. Without query parameters
// the session's current filter spec applies; any of category, search,
// price_min, price_max and sort build a one-shot spec instead.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	oneShot := q.Has("category") || q.Has("search") ||
		q.Has("price_min") || q.Has("price_max") || q.Has("sort")

	if !oneShot {
		products, err := h.ctrl.VisibleProducts(r.Context())
		if err != nil {
			handleCatalogError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, products)
		return
	}

	products, err := h.catalog.Products(r.Context())
	if err != nil {
		handleCatalogError(w, err)
		return
	}

	spec := filter.DefaultSpec(products)
	spec.Category = q.Get("category")
	spec.Search = q.Get("search")
	spec.Sort = filter.ParseSort(q.Get("sort"))

	if raw := q.Get("price_min"); raw != "" {
		min, parseErr := decimal.NewFromString(raw)
		if parseErr != nil {
			respondError(w, http.StatusBadRequest, "invalid_price", "price_min must be a decimal")
			return
		}
		spec.PriceMin = min
	}
	if raw := q.Get("price_max"); raw != "" {
		max, parseErr := decimal.NewFromString(raw)
		if parseErr != nil {
			respondError(w, http.StatusBadRequest, "invalid_price", "price_max must be a decimal")
			return
		}
		spec.PriceMax = max
	}

	respondJSON(w, http.StatusOK, filter.Apply(products, spec))
}

// Get serves a single product's details.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseProductID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id must be a positive integer")
		return
	}

	product, err := h.ctrl.SelectProduct(r.Context(), id)
	if err != nil {
		handleCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Categories serves the deduplicated raw category labels.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.ctrl.Categories(r.Context())
	if err != nil {
		handleCatalogError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func parseProductID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "product_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
