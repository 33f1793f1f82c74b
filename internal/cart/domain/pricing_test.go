package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestShippingFreeAtThreshold(t *testing.T) {
	p := DefaultPricer()

	// 门槛为含边界：恰好 99.00 免运费
	assert.True(t, p.ShippingCost(dec("99.00"), nil).IsZero())
	assert.True(t, p.ShippingCost(dec("150.00"), nil).IsZero())
}

func TestShippingFlatBelowThreshold(t *testing.T) {
	p := DefaultPricer()

	assert.True(t, p.ShippingCost(dec("98.99"), nil).Equal(dec("9.99")))
	assert.True(t, p.ShippingCost(dec("0.01"), nil).Equal(dec("9.99")))
}

func TestShippingHeavyWeightSurcharge(t *testing.T) {
	p := DefaultPricer()
	sub := dec("50.00")

	cases := []struct {
		weight string
		want   string
	}{
		{"10", "9.99"},    // 起征重量以内无附加费
		{"10.1", "12.98"}, // 超出不足一步按一步计
		{"15", "12.98"},
		{"15.1", "15.97"},
		{"25", "18.96"},
	}
	for _, tc := range cases {
		w := dec(tc.weight)
		got := p.ShippingCost(sub, &w)
		assert.True(t, got.Equal(dec(tc.want)), "weight %s: got %s, want %s", tc.weight, got, tc.want)
	}
}

func TestShippingHeavyWeightIgnoredWhenFree(t *testing.T) {
	p := DefaultPricer()
	w := dec("50")

	assert.True(t, p.ShippingCost(dec("99.00"), &w).IsZero())
}

func TestQuoteDerivesTaxAndTotal(t *testing.T) {
	p := DefaultPricer()

	q := p.QuoteFor(dec("50.00"), nil)

	assert.True(t, q.Subtotal.Equal(dec("50.00")))
	assert.True(t, q.Shipping.Equal(dec("9.99")))
	assert.True(t, q.Tax.Equal(dec("4.00")), "got %s", q.Tax)
	assert.True(t, q.Total.Equal(dec("63.99")), "got %s", q.Total)
}

func TestQuoteTaxWithFreeShipping(t *testing.T) {
	p := DefaultPricer()

	q := p.QuoteFor(dec("100.00"), nil)

	assert.True(t, q.Shipping.IsZero())
	assert.True(t, q.Tax.Equal(dec("8.00")), "got %s", q.Tax)
	assert.True(t, q.Total.Equal(dec("108.00")), "got %s", q.Total)
}

func TestQuoteFreeShippingRemaining(t *testing.T) {
	p := DefaultPricer()

	q := p.QuoteFor(dec("79.01"), nil)
	require.NotNil(t, q.FreeShippingRemaining)
	assert.True(t, q.FreeShippingRemaining.Equal(dec("19.99")), "got %s", q.FreeShippingRemaining)

	q = p.QuoteFor(dec("99.00"), nil)
	assert.Nil(t, q.FreeShippingRemaining)
}

func TestNewPricerFromStrings(t *testing.T) {
	p, err := NewPricer("99.00", "9.99", "0.08", "10", "5", "2.99")
	require.NoError(t, err)
	assert.True(t, p.FreeShippingThreshold.Equal(dec("99.00")))
	assert.True(t, p.TaxRate.Equal(dec("0.08")))

	_, err = NewPricer("not-a-number", "9.99", "0.08", "10", "5", "2.99")
	assert.Error(t, err)
}
