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

	"github.com/autofixx/storefront/internal/catalog/application"
	"github.com/autofixx/storefront/internal/catalog/domain"
)

type staticRepo struct {
	products   []*domain.Product
	categories []*domain.Category
	brands     []*domain.Brand
}

func (r *staticRepo) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	return r.products, nil
}

func (r *staticRepo) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return r.categories, nil
}

func (r *staticRepo) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	return r.brands, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func uintPtr(v uint) *uint {
	return &v
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &staticRepo{
		products: []*domain.Product{
			{
				Model:         gorm.Model{ID: 1},
				Name:          "Brake Pads",
				Slug:          "brake-pads",
				Price:         decimal.RequireFromString("89.99"),
				OriginalPrice: decPtr("119.99"),
				Stock:         15,
				BrandID:       uintPtr(1),
				CategoryID:    uintPtr(1),
				VehicleType:   domain.VehicleTypeCar,
				IsActive:      true,
				IsFeatured:    true,
			},
			{
				Model:       gorm.Model{ID: 2},
				Name:        "Chain Kit",
				Slug:        "chain-kit",
				Price:       decimal.RequireFromString("179.99"),
				Stock:       8,
				BrandID:     uintPtr(2),
				CategoryID:  uintPtr(2),
				VehicleType: domain.VehicleTypeMotorcycle,
				IsActive:    true,
			},
			{
				Model:       gorm.Model{ID: 3},
				Name:        "Retired Part",
				Slug:        "retired-part",
				Price:       decimal.RequireFromString("9.99"),
				VehicleType: domain.VehicleTypeCar,
				IsActive:    false,
			},
		},
		categories: []*domain.Category{
			{Model: gorm.Model{ID: 1}, Name: "Brakes", Slug: "brakes", VehicleType: domain.VehicleTypeCar},
			{Model: gorm.Model{ID: 2}, Name: "Drivetrain", Slug: "drivetrain", VehicleType: domain.VehicleTypeMotorcycle},
		},
		brands: []*domain.Brand{
			{Model: gorm.Model{ID: 1}, Name: "Brembo", Slug: "brembo"},
			{Model: gorm.Model{ID: 2}, Name: "DID", Slug: "did"},
		},
	}

	query, err := application.NewCatalogQueryService(context.Background(), repo, nil, 0)
	require.NoError(t, err)

	router := gin.New()
	NewCatalogHandler(query, false).RegisterRoutes(router)
	return router
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, []map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var body []map[string]any
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestListProductsExcludesInactive(t *testing.T) {
	router := testRouter(t)

	w, body := doGet(t, router, "/api/products")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body, 2)
}

func TestListProductsFilterByVehicleType(t *testing.T) {
	router := testRouter(t)

	_, body := doGet(t, router, "/api/products?vehicleType=motorcycle")
	require.Len(t, body, 1)
	assert.Equal(t, "Chain Kit", body[0]["name"])
}

func TestListProductsFilterByCategorySlug(t *testing.T) {
	router := testRouter(t)

	_, body := doGet(t, router, "/api/products?category=brakes")
	require.Len(t, body, 1)
	assert.Equal(t, "Brake Pads", body[0]["name"])
}

func TestListProductsSortPriceHigh(t *testing.T) {
	router := testRouter(t)

	_, body := doGet(t, router, "/api/products?sort=price-high")
	require.Len(t, body, 2)
	assert.Equal(t, "Chain Kit", body[0]["name"])
}

func TestListProductsInvalidPriceRejected(t *testing.T) {
	router := testRouter(t)

	w, _ := doGet(t, router, "/api/products?minPrice=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProductBySlugWithDerivedFields(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/brake-pads", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "brake-pads", body["slug"])
	assert.Equal(t, float64(25), body["discount_percentage"])
	assert.Equal(t, true, body["on_sale"])
	assert.Equal(t, "In Stock", body["stock_status"])
	assert.Equal(t, "$89.99", body["display_price"])
	assert.Equal(t, "2 business days", body["shipping_estimate"])
}

func TestProductViewSummaryFallsBackToDescription(t *testing.T) {
	p := &domain.Product{
		Description: strings.Repeat("a", 200),
		Price:       decimal.RequireFromString("1234.50"),
	}

	view := toView(p)
	assert.True(t, strings.HasSuffix(view.Summary, "..."))
	assert.Len(t, view.Summary, 143)
	assert.Equal(t, "$1,234.50", view.DisplayPrice)
	// 无货不给发货时效
	assert.Empty(t, view.ShippingEstimate)
}

func TestGetProductUnknownSlug(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/products/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "product not found", body["error"])
}

func TestFeaturedProducts(t *testing.T) {
	router := testRouter(t)

	_, body := doGet(t, router, "/api/products/featured")
	require.Len(t, body, 1)
	assert.Equal(t, "Brake Pads", body[0]["name"])
}

func TestListCategoriesByVehicleType(t *testing.T) {
	router := testRouter(t)

	_, body := doGet(t, router, "/api/categories?vehicleType=car")
	require.Len(t, body, 1)
	assert.Equal(t, "Brakes", body[0]["name"])
}

func TestListBrands(t *testing.T) {
	router := testRouter(t)

	_, body := doGet(t, router, "/api/brands")
	assert.Len(t, body, 2)
}
