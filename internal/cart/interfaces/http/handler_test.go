package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	cartapp "github.com/autofixx/storefront/internal/cart/application"
	cartdomain "github.com/autofixx/storefront/internal/cart/domain"
	catalogapp "github.com/autofixx/storefront/internal/catalog/application"
	catalogdomain "github.com/autofixx/storefront/internal/catalog/domain"
)

type staticRepo struct {
	products []*catalogdomain.Product
}

func (r *staticRepo) ListProducts(ctx context.Context) ([]*catalogdomain.Product, error) {
	return r.products, nil
}

func (r *staticRepo) ListCategories(ctx context.Context) ([]*catalogdomain.Category, error) {
	return nil, nil
}

func (r *staticRepo) ListBrands(ctx context.Context) ([]*catalogdomain.Brand, error) {
	return nil, nil
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &staticRepo{products: []*catalogdomain.Product{
		{Model: gorm.Model{ID: 1}, Name: "Brake Pads", Slug: "brake-pads", Price: decimal.RequireFromString("89.99"), IsActive: true},
		{Model: gorm.Model{ID: 2}, Name: "Air Filter", Slug: "air-filter", Price: decimal.RequireFromString("45.99"), IsActive: true},
	}}
	catalog, err := catalogapp.NewCatalogQueryService(context.Background(), repo, nil, 0)
	require.NoError(t, err)

	carts := cartapp.NewCartService(catalog, nil, cartdomain.DefaultPricer(), nil)

	router := gin.New()
	NewCartHandler(carts).RegisterRoutes(router)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body, session string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w, out
}

func TestGetCartAssignsSessionHeader(t *testing.T) {
	router := testRouter(t)

	w, body := do(t, router, http.MethodGet, "/api/cart", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(SessionHeader))
	assert.Equal(t, float64(0), body["item_count"])
}

func TestAddItemReturnsUpdatedCart(t *testing.T) {
	router := testRouter(t)

	w, body := do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":1}`, "s1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["item_count"])
	assert.Equal(t, "89.99", body["subtotal"])

	_, body = do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":1}`, "s1")
	assert.Equal(t, float64(2), body["item_count"])
	assert.Equal(t, "179.98", body["subtotal"])
}

func TestAddItemUnknownProductReturnsUnchangedCart(t *testing.T) {
	router := testRouter(t)

	w, body := do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":999}`, "s1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body["item_count"])
}

func TestAddItemMissingBodyRejected(t *testing.T) {
	router := testRouter(t)

	w, body := do(t, router, http.MethodPost, "/api/cart/items", `{}`, "s1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "product_id is required", body["error"])
}

func TestUpdateQuantityEndpoint(t *testing.T) {
	router := testRouter(t)

	do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":1}`, "s1")
	_, body := do(t, router, http.MethodPatch, "/api/cart/items/1", `{"quantity":5}`, "s1")
	assert.Equal(t, float64(5), body["item_count"])

	_, body = do(t, router, http.MethodPatch, "/api/cart/items/1", `{"quantity":0}`, "s1")
	assert.Equal(t, float64(0), body["item_count"])
}

func TestUpdateQuantityInvalidIDRejected(t *testing.T) {
	router := testRouter(t)

	w, _ := do(t, router, http.MethodPatch, "/api/cart/items/abc", `{"quantity":5}`, "s1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveAndClearEndpoints(t *testing.T) {
	router := testRouter(t)

	do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":1}`, "s1")
	do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":2}`, "s1")

	_, body := do(t, router, http.MethodDelete, "/api/cart/items/1", "", "s1")
	assert.Equal(t, float64(1), body["item_count"])

	_, body = do(t, router, http.MethodDelete, "/api/cart", "", "s1")
	assert.Equal(t, float64(0), body["item_count"])
}

func TestToggleEndpoint(t *testing.T) {
	router := testRouter(t)

	_, body := do(t, router, http.MethodPost, "/api/cart/toggle", "", "s1")
	assert.Equal(t, true, body["is_open"])

	_, body = do(t, router, http.MethodPost, "/api/cart/toggle", "", "s1")
	assert.Equal(t, false, body["is_open"])
}

func TestQuoteEndpoint(t *testing.T) {
	router := testRouter(t)

	do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":2}`, "s1")

	_, body := do(t, router, http.MethodGet, "/api/cart/quote", "", "s1")
	assert.Equal(t, "45.99", body["subtotal"])
	assert.Equal(t, "9.99", body["shipping"])
	assert.Equal(t, "3.68", body["tax"])
	assert.Equal(t, "59.66", body["total"])
	assert.Equal(t, "53.01", body["free_shipping_remaining"])
}

func TestQuoteWithWeightSurcharge(t *testing.T) {
	router := testRouter(t)

	do(t, router, http.MethodPost, "/api/cart/items", `{"product_id":2}`, "s1")

	_, body := do(t, router, http.MethodGet, "/api/cart/quote?weight=17", "", "s1")
	assert.Equal(t, "15.97", body["shipping"])

	w, _ := do(t, router, http.MethodGet, "/api/cart/quote?weight=-1", "", "s1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
