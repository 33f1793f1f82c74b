package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fixtureStore() *Store {
	products := []*Product{
		{Model: gorm.Model{ID: 1}, Name: "Brake Pads", Slug: "brake-pads", Price: dec("89.99"), IsActive: true, IsFeatured: true},
		{Model: gorm.Model{ID: 2}, Name: "Air Filter", Slug: "air-filter", Price: dec("45.99"), IsActive: true},
		{Model: gorm.Model{ID: 3}, Name: "Old Part", Slug: "old-part", Price: dec("9.99"), IsActive: false, IsFeatured: true},
	}
	categories := []*Category{
		{Model: gorm.Model{ID: 1}, Name: "Brakes", Slug: "brakes", VehicleType: VehicleTypeCar},
		{Model: gorm.Model{ID: 2}, Name: "Drivetrain", Slug: "drivetrain", VehicleType: VehicleTypeMotorcycle},
	}
	brands := []*Brand{
		{Model: gorm.Model{ID: 1}, Name: "Brembo", Slug: "brembo"},
	}
	return NewStore(products, categories, brands)
}

func TestStoreLookupByID(t *testing.T) {
	s := fixtureStore()

	p, ok := s.ProductByID(1)
	require.True(t, ok)
	assert.Equal(t, "Brake Pads", p.Name)

	_, ok = s.ProductByID(99)
	assert.False(t, ok)
}

func TestStoreLookupBySlug(t *testing.T) {
	s := fixtureStore()

	p, ok := s.ProductBySlug("air-filter")
	require.True(t, ok)
	assert.Equal(t, uint(2), p.ID)

	c, ok := s.CategoryBySlug("brakes")
	require.True(t, ok)
	assert.Equal(t, uint(1), c.ID)

	b, ok := s.BrandBySlug("brembo")
	require.True(t, ok)
	assert.Equal(t, "Brembo", b.Name)

	_, ok = s.ProductBySlug("missing")
	assert.False(t, ok)
}

func TestStoreActiveProductsExcludesInactive(t *testing.T) {
	s := fixtureStore()

	active := s.ActiveProducts()
	require.Len(t, active, 2)
	for _, p := range active {
		assert.True(t, p.IsActive)
	}
}

func TestStoreFeaturedProducts(t *testing.T) {
	s := fixtureStore()

	featured := s.FeaturedProducts()
	require.Len(t, featured, 2)
	assert.Equal(t, uint(1), featured[0].ID)
}

func TestStoreCategoriesByVehicleType(t *testing.T) {
	s := fixtureStore()

	car := s.CategoriesByVehicleType(VehicleTypeCar)
	require.Len(t, car, 1)
	assert.Equal(t, "Brakes", car[0].Name)
}

func TestStoreProductsReturnsCopy(t *testing.T) {
	s := fixtureStore()

	products := s.Products()
	products[0] = nil

	assert.NotNil(t, s.Products()[0])
}
