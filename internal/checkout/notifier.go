package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Acknowledgment is the advisory result of a simulated checkout. No order
// is persisted anywhere; the reference exists only for the confirmation
// message.
type Acknowledgment struct {
	OrderRef string          `json:"order_ref"`
	Total    decimal.Decimal `json:"total"`
	Message  string          `json:"message"`
	PlacedAt time.Time       `json:"placed_at"`
}

// Notifier acknowledges checkouts. It deliberately does not touch the
// cart: items stay in the cart after a purchase, matching the shipped
// behavior of the storefront.
type Notifier struct {
	log *logrus.Logger
	now func() time.Time
}

func NewNotifier(log *logrus.Logger) *Notifier {
	return &Notifier{
		log: log,
		now: time.Now,
	}
}

// Checkout emits a success acknowledgment for the given total, formatted
// to two decimal places. The caller is expected to close the cart view.
func (n *Notifier) Checkout(total decimal.Decimal) Acknowledgment {
	ack := Acknowledgment{
		OrderRef: uuid.New().String(),
		Total:    total,
		Message:  fmt.Sprintf("Order of $%s processed successfully!", total.StringFixed(2)),
		PlacedAt: n.now(),
	}

	n.log.WithFields(logrus.Fields{
		"order_ref": ack.OrderRef,
		"total":     total.StringFixed(2),
	}).Info("checkout acknowledged")

	return ack
}
