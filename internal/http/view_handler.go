package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/fjod/go_storefront/internal/filter"
	"github.com/fjod/go_storefront/internal/ui"
)

// ViewHandler drives the session controller: search-as-you-type, category
// selection, filter replacement, product detail selection and the cart
// drawer. These endpoints mutate view state only; no network or storage
// side effects beyond what the controller does.
type ViewHandler struct {
	ctrl *ui.Controller
}

func NewViewHandler(ctrl *ui.Controller) *ViewHandler {
	return &ViewHandler{ctrl: ctrl}
}

type SearchRequestDTO struct {
	Query string `json:"query"`
}

type CategoryRequestDTO struct {
	Category string `json:"category"`
}

type FiltersRequestDTO struct {
	Category string `json:"category"`
	PriceMin string `json:"price_min"`
	PriceMax string `json:"price_max"`
	Sort     string `json:"sort"`
	Search   string `json:"search"`
}

type CartVisibilityResponse struct {
	Open bool `json:"open"`
}

// Search registers a keystroke; the active filter only updates once typing
// pauses for the debounce window.
func (h *ViewHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.ctrl.SetSearchQuery(req.Query)
	w.WriteHeader(http.StatusAccepted)
}

func (h *ViewHandler) SelectCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.ctrl.SelectCategory(req.Category)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ViewHandler) ReplaceFilters(w http.ResponseWriter, r *http.Request) {
	var req FiltersRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	spec := filter.Spec{
		Category: req.Category,
		Sort:     filter.ParseSort(req.Sort),
		Search:   req.Search,
	}

	// Omitted bounds keep the widest range: zero up to the active ceiling.
	spec.PriceMax = h.ctrl.Spec().PriceMax
	var err error
	if req.PriceMin != "" {
		if spec.PriceMin, err = decimal.NewFromString(req.PriceMin); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_price", "price_min must be a decimal")
			return
		}
	}
	if req.PriceMax != "" {
		if spec.PriceMax, err = decimal.NewFromString(req.PriceMax); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_price", "price_max must be a decimal")
			return
		}
	}

	h.ctrl.ReplaceFilters(spec)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ViewHandler) ResetFilters(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.ResetFilters(r.Context()); err != nil {
		handleCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearSelection closes the product detail view.
func (h *ViewHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.ctrl.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

// ToggleCart flips the cart drawer and reports the new visibility.
func (h *ViewHandler) ToggleCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, CartVisibilityResponse{Open: h.ctrl.ToggleCart()})
}
