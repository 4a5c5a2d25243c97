package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, env *testEnv, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) CartResponse {
	var resp CartResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestGetCart_Empty(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	rec := doJSON(t, env, http.MethodGet, "/api/v1/cart/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TotalItems)
	assert.True(t, resp.TotalPrice.IsZero())
}

func TestAddItem_Success(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	rec := doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Blue Shirt", resp.Items[0].Title)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.Equal(t, 1, resp.TotalItems)
}

func TestAddItem_DuplicateMerges(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	rec := doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "39.98", resp.TotalPrice.StringFixed(2))
}

func TestAddItem_Validation(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	tests := []struct {
		name string
		body string
		code string
	}{
		{"invalid JSON", `{product_id`, "invalid_request"},
		{"zero id", `{"product_id":0}`, "invalid_product_id"},
		{"negative id", `{"product_id":-4}`, "invalid_product_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, env, http.MethodPost, "/api/v1/cart/items", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Code)
		})
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	rec := doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, env.store.Items())
}

func TestUpdateQuantity_Success(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	rec := doJSON(t, env, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestUpdateQuantity_ZeroRemoves(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	rec := doJSON(t, env, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	assert.Empty(t, resp.Items)
}

func TestUpdateQuantity_UnknownIDReturnsCurrentCart(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	rec := doJSON(t, env, http.MethodPut, "/api/v1/cart/items/42", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, rec.Code, "no-op mutation is not an error")

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].ID)
}

func TestUpdateQuantity_Validation(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	rec := doJSON(t, env, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":100}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, env, http.MethodPut, "/api/v1/cart/items/abc", `{"quantity":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveItem_Success(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":2}`)

	rec := doJSON(t, env, http.MethodDelete, "/api/v1/cart/items/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(2), resp.Items[0].ID)
	assert.Equal(t, "168.00", resp.TotalPrice.StringFixed(2))
}

func TestClearCart(t *testing.T) {
	env := setupEnv(t, &catalogMock{products: testProducts()})

	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":1}`)
	doJSON(t, env, http.MethodPost, "/api/v1/cart/items", `{"product_id":2}`)

	rec := doJSON(t, env, http.MethodDelete, "/api/v1/cart/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeCart(t, rec)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.TotalItems)
}
