// Package cart implements the shopping cart reducer.
//
// A Cart maps (product, size) pairs to quantities and derives the item
// count and the monetary total from a price snapshot of the catalog. It
// mirrors the state the frontend keeps client-side, and the checkout
// handler replays submitted cart lines through it to recompute the total
// server-side. Purely synchronous, no I/O; not safe for concurrent use.
package cart

import "sort"

// Key identifies one cart entry: a product in a specific size variant.
type Key struct {
	ProductID string
	Size      string
}

// Item is one cart entry with its quantity.
type Item struct {
	Key
	Quantity int
}

// Snapshot maps product ids to prices. Totals are computed against it so
// no network round trip is needed per entry.
type Snapshot map[string]float64

// Cart holds the entries. Quantities are always positive: setting an
// entry to zero or below removes it.
type Cart struct {
	items map[Key]int
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{items: make(map[Key]int)}
}

// Add increments the entry for (productID, size) by qty, creating it if
// absent. Non-positive qty is ignored.
func (c *Cart) Add(productID, size string, qty int) {
	if qty <= 0 {
		return
	}
	c.items[Key{ProductID: productID, Size: size}] += qty
}

// SetQuantity overwrites the entry's quantity. A qty of zero or below
// removes the entry; zero quantities are never stored.
func (c *Cart) SetQuantity(productID, size string, qty int) {
	k := Key{ProductID: productID, Size: size}
	if qty <= 0 {
		delete(c.items, k)
		return
	}
	c.items[k] = qty
}

// Quantity returns the entry's quantity, or 0 when absent.
func (c *Cart) Quantity(productID, size string) int {
	return c.items[Key{ProductID: productID, Size: size}]
}

// Count returns the sum of all quantities.
func (c *Cart) Count() int {
	total := 0
	for _, qty := range c.items {
		total += qty
	}
	return total
}

// Amount returns the monetary total of the cart against prices.
// Entries whose product is missing from the snapshot contribute 0 — the
// product may have been deleted since it was added to the cart.
func (c *Cart) Amount(prices Snapshot) float64 {
	total := 0.0
	for k, qty := range c.items {
		total += prices[k.ProductID] * float64(qty)
	}
	return total
}

// Items returns the entries ordered by product id then size.
func (c *Cart) Items() []Item {
	items := make([]Item, 0, len(c.items))
	for k, qty := range c.items {
		items = append(items, Item{Key: k, Quantity: qty})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].ProductID != items[j].ProductID {
			return items[i].ProductID < items[j].ProductID
		}
		return items[i].Size < items[j].Size
	})
	return items
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = make(map[Key]int)
}
