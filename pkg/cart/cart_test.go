package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddIncrements(t *testing.T) {
	c := New()
	c.Add("p1", "M", 1)
	c.Add("p1", "M", 2)
	c.Add("p1", "L", 1)

	assert.Equal(t, 3, c.Quantity("p1", "M"))
	assert.Equal(t, 1, c.Quantity("p1", "L"))
	assert.Equal(t, 4, c.Count())
}

func TestAddIgnoresNonPositive(t *testing.T) {
	c := New()
	c.Add("p1", "M", 0)
	c.Add("p1", "M", -3)

	assert.Equal(t, 0, c.Count())
}

func TestSetQuantityToZeroRemovesEntry(t *testing.T) {
	c := New()
	c.Add("p1", "M", 3)
	c.SetQuantity("p1", "M", 0)

	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Items())
}

func TestSetQuantityOverwrites(t *testing.T) {
	c := New()
	c.Add("p1", "M", 3)
	c.SetQuantity("p1", "M", 7)

	assert.Equal(t, 7, c.Quantity("p1", "M"))

	c.SetQuantity("p1", "M", -1)
	assert.Equal(t, 0, c.Quantity("p1", "M"))
}

func TestAmount(t *testing.T) {
	c := New()
	c.Add("p1", "S", 2)
	c.Add("p2", "M", 1)

	prices := Snapshot{"p1": 10, "p2": 25}
	assert.InDelta(t, 45.0, c.Amount(prices), 1e-9)
}

func TestAmountSkipsDeletedProducts(t *testing.T) {
	c := New()
	c.Add("p1", "S", 2)
	c.Add("gone", "M", 5)

	prices := Snapshot{"p1": 10}
	assert.InDelta(t, 20.0, c.Amount(prices), 1e-9)
}

func TestItemsOrderedAndClear(t *testing.T) {
	c := New()
	c.Add("p2", "M", 1)
	c.Add("p1", "S", 2)
	c.Add("p1", "L", 1)

	items := c.Items()
	assert.Equal(t, []Item{
		{Key: Key{ProductID: "p1", Size: "L"}, Quantity: 1},
		{Key: Key{ProductID: "p1", Size: "S"}, Quantity: 2},
		{Key: Key{ProductID: "p2", Size: "M"}, Quantity: 1},
	}, items)

	c.Clear()
	assert.Equal(t, 0, c.Count())
}
