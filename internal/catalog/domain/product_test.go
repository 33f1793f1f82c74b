package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestOnSale(t *testing.T) {
	p := &Product{Price: dec("89.99"), OriginalPrice: decPtr("119.99")}
	assert.True(t, p.OnSale())

	p = &Product{Price: dec("89.99")}
	assert.False(t, p.OnSale())

	// 折扣前价格不高于现价不算打折
	p = &Product{Price: dec("89.99"), OriginalPrice: decPtr("89.99")}
	assert.False(t, p.OnSale())
}

func TestDiscountPercentage(t *testing.T) {
	cases := []struct {
		name     string
		price    string
		original *decimal.Decimal
		want     int
	}{
		{"quarter off", "89.99", decPtr("119.99"), 25},
		{"ten percent", "179.99", decPtr("199.99"), 10},
		{"eleven percent", "399.99", decPtr("449.99"), 11},
		{"no original price", "89.99", nil, 0},
		{"original below price", "100.00", decPtr("80.00"), 0},
		{"zero original", "10.00", decPtr("0"), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Product{Price: dec(tc.price), OriginalPrice: tc.original}
			assert.Equal(t, tc.want, p.DiscountPercentage())
		})
	}
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		stock int
		want  string
	}{
		{0, "Out of Stock"},
		{1, "Only 1 left"},
		{5, "Only 5 left"},
		{6, "Low Stock"},
		{10, "Low Stock"},
		{11, "In Stock"},
		{100, "In Stock"},
	}
	for _, tc := range cases {
		p := &Product{Stock: tc.stock}
		assert.Equal(t, tc.want, p.StockStatus(), "stock %d", tc.stock)
	}
}

func TestRatingValueDefaultsToZero(t *testing.T) {
	p := &Product{}
	assert.True(t, p.RatingValue().IsZero())

	p.Rating = decPtr("4.5")
	assert.True(t, p.RatingValue().Equal(dec("4.5")))
}
