package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	catalog "github.com/autofixx/storefront/internal/catalog/domain"
)

func product(id uint, price string) *catalog.Product {
	return &catalog.Product{
		Model: gorm.Model{ID: id},
		Name:  "product",
		Price: decimal.RequireFromString(price),
	}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New()
	p := product(1, "10.00")

	c.AddItem(p)
	c.AddItem(p)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, c.ItemCount())
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	c := New()
	first := product(1, "10.00")
	second := product(2, "20.00")

	c.AddItem(first)
	c.AddItem(second)
	c.AddItem(first)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].Product.ID)
	assert.Equal(t, uint(2), items[1].Product.ID)
}

func TestRemoveItemTwiceEqualsOnce(t *testing.T) {
	c := New()
	c.AddItem(product(1, "10.00"))
	c.AddItem(product(2, "20.00"))

	c.RemoveItem(1)
	once := c.Items()

	c.RemoveItem(1)
	assert.Equal(t, once, c.Items())
}

func TestRemoveItemAbsentIsNoop(t *testing.T) {
	c := New()
	c.AddItem(product(1, "10.00"))

	c.RemoveItem(99)

	assert.Equal(t, 1, c.ItemCount())
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	c := New()
	p := product(1, "10.00")
	c.AddItem(p)
	c.AddItem(p)

	c.UpdateQuantity(1, 5)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(product(1, "10.00"))

	c.UpdateQuantity(1, 0)

	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityNegativeRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(product(1, "10.00"))

	c.UpdateQuantity(1, -3)

	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantityAbsentIsNoop(t *testing.T) {
	c := New()
	c.AddItem(product(1, "10.00"))

	c.UpdateQuantity(99, 5)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestSubtotalSumsLineTotals(t *testing.T) {
	c := New()
	cheap := product(1, "10.50")
	dear := product(2, "99.99")

	c.AddItem(cheap)
	c.AddItem(cheap)
	c.AddItem(dear)

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("120.99")),
		"got %s", c.Subtotal())
}

func TestMergeTakesLargerQuantityOnConflict(t *testing.T) {
	c := New()
	p := product(1, "10.00")
	c.AddItem(p)
	c.AddItem(p)
	c.AddItem(p)

	saved := []LineItem{
		{Product: product(1, "10.00"), Quantity: 2},
		{Product: product(2, "5.00"), Quantity: 4},
	}
	c.Merge(saved)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 4, items[1].Quantity)
}

func TestClearEmptiesCart(t *testing.T) {
	c := New()
	c.AddItem(product(1, "10.00"))
	c.AddItem(product(2, "20.00"))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.ItemCount())
	assert.True(t, c.Subtotal().IsZero())
}

func TestSubscriberNotifiedOnEveryMutation(t *testing.T) {
	c := New()
	var calls int
	c.Subscribe(func(*Cart) { calls++ })

	c.AddItem(product(1, "10.00"))
	c.UpdateQuantity(1, 3)
	c.RemoveItem(1)

	assert.Equal(t, 3, calls)
}

func TestSubscriberNotNotifiedOnNoop(t *testing.T) {
	c := New()
	var calls int
	c.Subscribe(func(*Cart) { calls++ })

	c.RemoveItem(99)
	c.UpdateQuantity(99, 5)
	c.Clear()

	assert.Equal(t, 0, calls)
}

func TestSidebarToggleOpenClose(t *testing.T) {
	c := New()
	assert.False(t, c.IsOpen())

	c.Toggle()
	assert.True(t, c.IsOpen())

	c.Open()
	assert.True(t, c.IsOpen())

	c.Close()
	assert.False(t, c.IsOpen())

	c.Toggle()
	assert.True(t, c.IsOpen())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(product(1, "10.00"))

	items := c.Items()
	items[0].Quantity = 42

	assert.Equal(t, 1, c.Items()[0].Quantity)
}
