package ui

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/filter"
)

// Catalog is the read side the controller needs from the catalog client.
type Catalog interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Product(ctx context.Context, id int64) (*domain.Product, error)
}

// Controller holds the storefront's view state: the active filter spec,
// the selected product and whether the cart drawer is open. It is the
// single entry point presentation surfaces talk to; the filter engine,
// cart store and catalog client stay free of view concerns.
type Controller struct {
	catalog  Catalog
	cart     *cart.Store
	notifier *checkout.Notifier
	debounce *Debouncer
	log      *logrus.Logger

	mu         sync.Mutex
	spec       filter.Spec
	specReady  bool
	selectedID int64
	cartOpen   bool
}

func NewController(catalog Catalog, cartStore *cart.Store, notifier *checkout.Notifier, log *logrus.Logger) *Controller {
	return &Controller{
		catalog:  catalog,
		cart:     cartStore,
		notifier: notifier,
		debounce: NewDebouncer(SearchDebounceWindow),
		log:      log,
		spec:     filter.DefaultSpec(nil),
	}
}

// VisibleProducts returns the catalog filtered and sorted by the current
// spec. The first successful load clamps the price ceiling to the
// observed catalog maximum; the engine itself never clamps.
func (c *Controller) VisibleProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := c.catalog.Products(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if !c.specReady {
		c.spec.PriceMax = filter.PriceCeiling(products)
		c.specReady = true
	}
	spec := c.spec
	c.mu.Unlock()

	return filter.Apply(products, spec), nil
}

// Categories returns the deduplicated raw category labels.
func (c *Controller) Categories(ctx context.Context) ([]string, error) {
	return c.catalog.Categories(ctx)
}

// SetSearchQuery updates the search term after the debounce window has
// passed without further keystrokes.
func (c *Controller) SetSearchQuery(query string) {
	c.debounce.Do(func() {
		c.mu.Lock()
		c.spec.Search = query
		c.mu.Unlock()
	})
}

// SetSearchQueryNow applies the search term immediately, bypassing the
// debounce. Used when the caller has already coalesced input.
func (c *Controller) SetSearchQueryNow(query string) {
	c.mu.Lock()
	c.spec.Search = query
	c.mu.Unlock()
}

// SelectCategory sets the raw category label to filter by; empty selects
// all categories.
func (c *Controller) SelectCategory(category string) {
	c.mu.Lock()
	c.spec.Category = category
	c.mu.Unlock()
}

// ReplaceFilters swaps the whole filter spec at once.
func (c *Controller) ReplaceFilters(spec filter.Spec) {
	c.mu.Lock()
	c.spec = spec
	c.specReady = true
	c.mu.Unlock()
}

// ResetFilters restores the defaults but keeps the search query, the way
// the filter sidebar's Clear button behaves.
func (c *Controller) ResetFilters(ctx context.Context) error {
	products, err := c.catalog.Products(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	search := c.spec.Search
	c.spec = filter.DefaultSpec(products)
	c.spec.Search = search
	c.specReady = true
	c.mu.Unlock()
	return nil
}

// Spec returns a copy of the active filter spec.
func (c *Controller) Spec() filter.Spec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spec
}

// SelectProduct marks a product as the detail selection and returns it.
func (c *Controller) SelectProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := c.catalog.Product(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.selectedID = id
	c.mu.Unlock()
	return product, nil
}

// ClearSelection closes the product detail view.
func (c *Controller) ClearSelection() {
	c.mu.Lock()
	c.selectedID = 0
	c.mu.Unlock()
}

// SelectedProductID returns the current detail selection, zero if none.
func (c *Controller) SelectedProductID() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectedID
}

// ToggleCart flips the cart drawer and reports the new state.
func (c *Controller) ToggleCart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cartOpen = !c.cartOpen
	return c.cartOpen
}

// CartOpen reports whether the cart drawer is showing.
func (c *Controller) CartOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cartOpen
}

// Checkout acknowledges the purchase for the current cart total and
// closes the cart drawer. The cart itself is left as is.
func (c *Controller) Checkout() checkout.Acknowledgment {
	ack := c.notifier.Checkout(c.cart.TotalPrice())

	c.mu.Lock()
	c.cartOpen = false
	c.mu.Unlock()
	return ack
}

// Close releases the controller's timers.
func (c *Controller) Close() {
	c.debounce.Stop()
}

// DisplayCategory normalizes a raw catalog label for headings: the first
// possessive suffix dropped, the first hyphen spaced. Matching always uses
// the raw label; this is display only.
func DisplayCategory(label string) string {
	return strings.Replace(strings.Replace(label, "'s", "", 1), "-", " ", 1)
}
