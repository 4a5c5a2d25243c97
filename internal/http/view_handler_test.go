package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/checkout"
	"github.com/fjod/go_storefront/internal/filter"
)

func TestViewSearch_DebouncedApply(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	rec := doJSON(t, env, http.MethodPut, "/api/v1/view/search", `{"query":"shirt"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	require.Eventually(t, func() bool {
		return env.ctrl.Spec().Search == "shirt"
	}, time.Second, 10*time.Millisecond)
}

func TestViewCategory(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	rec := doJSON(t, env, http.MethodPut, "/api/v1/view/category", `{"category":"jewelery"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "jewelery", env.ctrl.Spec().Category)

	rec = doJSON(t, env, http.MethodPut, "/api/v1/view/category", `{"category":""}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, env.ctrl.Spec().Category)
}

func TestViewReplaceFilters(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	body := `{"category":"electronics","price_min":"10","price_max":"100","sort":"price-desc","search":"drive"}`
	rec := doJSON(t, env, http.MethodPut, "/api/v1/view/filters", body)
	require.Equal(t, http.StatusNoContent, rec.Code)

	spec := env.ctrl.Spec()
	assert.Equal(t, "electronics", spec.Category)
	assert.Equal(t, filter.SortPriceDesc, spec.Sort)
	assert.Equal(t, "drive", spec.Search)
	assert.Equal(t, "10", spec.PriceMin.String())
	assert.Equal(t, "100", spec.PriceMax.String())
}

func TestViewReplaceFilters_OmittedBoundsKeepWidestRange(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	// First listing clamps the ceiling to the priciest product.
	rec := doJSON(t, env, http.MethodGet, "/api/v1/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := `{"category":"jewelery","sort":"price-asc"}`
	rec = doJSON(t, env, http.MethodPut, "/api/v1/view/filters", body)
	require.Equal(t, http.StatusNoContent, rec.Code)

	spec := env.ctrl.Spec()
	assert.Equal(t, "jewelery", spec.Category)
	assert.True(t, spec.PriceMin.IsZero())
	assert.True(t, spec.PriceMax.Equal(price("168")), "omitted max falls back to the ceiling, got %s", spec.PriceMax)
}

func TestViewReplaceFilters_InvalidPrice(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	body := `{"price_min":"ten","price_max":"100"}`
	rec := doJSON(t, env, http.MethodPut, "/api/v1/view/filters", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestViewResetFilters(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	body := `{"category":"electronics","price_min":"10","price_max":"100","sort":"price-desc","search":"drive"}`
	doJSON(t, env, http.MethodPut, "/api/v1/view/filters", body)

	rec := doJSON(t, env, http.MethodPost, "/api/v1/view/filters/reset", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	spec := env.ctrl.Spec()
	assert.Empty(t, spec.Category)
	assert.Equal(t, filter.SortPopularity, spec.Sort)
	assert.Equal(t, "drive", spec.Search, "reset keeps the search query")
}

func TestViewCartToggle(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	rec := doJSON(t, env, http.MethodPost, "/api/v1/view/cart-toggle", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CartVisibilityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Open)

	rec = doJSON(t, env, http.MethodPost, "/api/v1/view/cart-toggle", "")
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Open)
}

func TestCheckout_AcknowledgesAndKeepsCart(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	doJSON(t, env, http.MethodPost, "/api/v1/view/cart-toggle", "")

	rec := doJSON(t, env, http.MethodPost, "/api/v1/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var ack checkout.Acknowledgment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&ack))
	assert.Equal(t, "Order of $39.98 processed successfully!", ack.Message)
	assert.NotEmpty(t, ack.OrderRef)

	assert.False(t, env.ctrl.CartOpen(), "checkout closes the cart drawer")
	assert.Len(t, env.store.Items(), 1, "cart survives checkout")
}

func TestHealth(t *testing.T) {
	env := setupEnv(t, &catalogMock{})

	rec := doJSON(t, env, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
