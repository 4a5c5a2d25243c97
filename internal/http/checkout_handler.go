package http

import (
	"net/http"

	"github.com/fjod/go_storefront/internal/ui"
)

type CheckoutHandler struct {
	ctrl *ui.Controller
}

func NewCheckoutHandler(ctrl *ui.Controller) *CheckoutHandler {
	return &CheckoutHandler{ctrl: ctrl}
}

// Checkout acknowledges the simulated purchase. Purely advisory: the
// cart is untouched and nothing is persisted beyond the log line.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ack := h.ctrl.Checkout()
	respondJSON(w, http.StatusOK, ack)
}
