package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/cart"
	"github.com/fjod/go_storefront/internal/cart/repository"
	"github.com/fjod/go_storefront/internal/catalog"
	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/ui"
)

type catalogMock struct {
	products   []domain.Product
	categories []string
	err        error
}

func (m *catalogMock) Products(context.Context) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *catalogMock) Categories(context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.categories, nil
}

func (m *catalogMock) Product(_ context.Context, id int64) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &catalog.FetchError{Resource: "product", Status: http.StatusNotFound}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Title: "Blue Shirt", Description: "A comfy blue shirt", Category: "men's clothing",
			Price: price("19.99"), Rating: domain.Rating{Rate: price("4.1"), Count: 120}},
		{ID: 2, Title: "Gold Ring", Description: "Fine jewelery", Category: "jewelery",
			Price: price("168.00"), Rating: domain.Rating{Rate: price("3.9"), Count: 70}},
		{ID: 3, Title: "Hard Drive", Description: "1TB external storage", Category: "electronics",
			Price: price("64.00"), Rating: domain.Rating{Rate: price("4.8"), Count: 400}},
	}
}

type testEnv struct {
	router http.Handler
	store  *cart.Store
	ctrl   *ui.Controller
	mock   *catalogMock
}

func setupEnv(t *testing.T, mock *catalogMock) *testEnv {
	log := testLogger()

	store, err := cart.NewStore(context.Background(), repository.NewMemoryRepository(), log)
	require.NoError(t, err)

	ctrl := ui.NewController(mock, store, checkout.NewNotifier(log), log)
	t.Cleanup(ctrl.Close)

	return &testEnv{
		router: NewRouter(ctrl, store, mock, 5*time.Second),
		store:  store,
		ctrl:   ctrl,
		mock:   mock,
	}
}
