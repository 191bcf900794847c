package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoLines = errors.New("transaction requires at least one line")

// Line is one entry of a finalized transaction. Exactly one of ProductID /
// SaleID is set depending on whether the line came from the cart or from a
// completed fuel sale. Quantity is fractional for fuel (gallons).
type Line struct {
	ProductID *uuid.UUID
	SaleID    *uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  float64
	IsFuel    bool
	LineTotal float64
}

// Transaction is the immutable snapshot handed to the persistence and
// receipt collaborators. Totals are derived once at construction and never
// change afterwards.
type Transaction struct {
	id          uuid.UUID
	lines       []Line
	subtotal    float64
	taxAmount   float64
	totalAmount float64
	createdAt   time.Time
}

func New(lines []Line, taxRate float64, now time.Time) (*Transaction, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var subtotal float64
	finalized := make([]Line, len(lines))
	for i, l := range lines {
		l.LineTotal = l.UnitPrice * l.Quantity
		finalized[i] = l
		subtotal += l.LineTotal
	}
	tax := subtotal * taxRate

	return &Transaction{
		id:          uuid.New(),
		lines:       finalized,
		subtotal:    subtotal,
		taxAmount:   tax,
		totalAmount: subtotal + tax,
		createdAt:   now,
	}, nil
}

func (t *Transaction) ID() uuid.UUID        { return t.id }
func (t *Transaction) Subtotal() float64    { return t.subtotal }
func (t *Transaction) TaxAmount() float64   { return t.taxAmount }
func (t *Transaction) TotalAmount() float64 { return t.totalAmount }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }

func (t *Transaction) Lines() []Line {
	lines := make([]Line, len(t.lines))
	copy(lines, t.lines)
	return lines
}
