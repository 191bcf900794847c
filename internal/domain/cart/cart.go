package cart

import (
	"errors"
	"math"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrInvalidPrice    = errors.New("unit price must be non-negative")
)

// Item is one cart line. The ID identifies the line, not the product:
// re-adding under a new ID creates a new line, re-adding under the same ID
// merges quantities. UnitPrice is snapshotted at add time.
type Item struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
	IsFuel    bool
	Metadata  map[string]string
}

func (i Item) validate() error {
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.UnitPrice < 0 || math.IsNaN(i.UnitPrice) || math.IsInf(i.UnitPrice, 0) {
		return ErrInvalidPrice
	}
	return nil
}

type Totals struct {
	Subtotal    float64
	TaxAmount   float64
	TotalAmount float64
}

// Cart holds one terminal session's line items. Totals are recomputed inside
// the same critical section as every mutation, so no observer can see items
// and totals out of sync.
type Cart struct {
	mu      sync.Mutex
	taxRate float64
	items   []Item
	totals  Totals
}

func New(taxRate float64) *Cart {
	return &Cart{taxRate: taxRate}
}

func (c *Cart) TaxRate() float64 { return c.taxRate }

// AddItem appends a line, or merges quantities when the line ID already
// exists.
func (c *Cart) AddItem(item Item) error {
	if err := item.validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged := false
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		c.items = append(c.items, item)
	}

	c.recompute()
	return nil
}

// UpdateQuantity replaces a line's quantity. Zero or negative removes the
// line. Unknown IDs are a no-op.
func (c *Cart) UpdateQuantity(itemID uuid.UUID, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(itemID)
		c.recompute()
		return
	}

	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items[i].Quantity = quantity
			break
		}
	}
	c.recompute()
}

// RemoveItem drops a line. Removing a missing ID is a no-op.
func (c *Cart) RemoveItem(itemID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removeLocked(itemID)
	c.recompute()
}

// RemoveLines drops the given lines in one critical section. Lines added
// after the caller took its snapshot are untouched, so a checkout never
// discards items that arrived while it was persisting.
func (c *Cart) RemoveLines(itemIDs []uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range itemIDs {
		c.removeLocked(id)
	}
	c.recompute()
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.totals = Totals{}
}

func (c *Cart) removeLocked(itemID uuid.UUID) {
	for i := range c.items {
		if c.items[i].ID == itemID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// recompute derives totals from scratch; callers must hold c.mu.
func (c *Cart) recompute() {
	var subtotal float64
	for _, item := range c.items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	tax := subtotal * c.taxRate
	c.totals = Totals{
		Subtotal:    subtotal,
		TaxAmount:   tax,
		TotalAmount: subtotal + tax,
	}
}

// Snapshot returns a consistent copy of lines and totals.
type Snapshot struct {
	Items  []Item
	Totals Totals
}

func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]Item, len(c.items))
	copy(items, c.items)
	return Snapshot{Items: items, Totals: c.totals}
}
