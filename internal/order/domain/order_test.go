package domain

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^AF-[0-9A-Z]+-[0-9A-Z]+$`)

	for i := 0; i < 100; i++ {
		number := NewOrderNumber()
		assert.Regexp(t, pattern, number)
	}
}

func TestNewOrderNumberUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		number := NewOrderNumber()
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{
		UnitPrice: decimal.RequireFromString("89.99"),
		Quantity:  3,
	}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("269.97")))
}
