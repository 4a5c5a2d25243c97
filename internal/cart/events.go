package cart

import "fmt"

// EventKind classifies a cart notification.
type EventKind string

const (
	EventAdded   EventKind = "added"
	EventUpdated EventKind = "updated"
	EventRemoved EventKind = "removed"
	EventCleared EventKind = "cleared"
)

// Event is published to subscribers after a mutation has been applied and
// persisted. Presentation surfaces render these as toasts.
type Event struct {
	Kind      EventKind
	ProductID int64
	Title     string
}

// Message returns the user-facing notification text for the event.
func (e Event) Message() string {
	switch e.Kind {
	case EventAdded:
		return fmt.Sprintf("%s was added to cart", e.Title)
	case EventUpdated:
		return fmt.Sprintf("%s quantity increased in cart", e.Title)
	case EventRemoved:
		return "Item removed from cart"
	case EventCleared:
		return "All items were removed from cart"
	default:
		return ""
	}
}
