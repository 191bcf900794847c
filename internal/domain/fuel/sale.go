package fuel

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount = errors.New("authorized amount must be positive")
	ErrInvalidPrice  = errors.New("price per gallon must be positive")
	ErrNotDispensing = errors.New("sale is not dispensing")
)

type Status string

const (
	StatusAuthorized Status = "authorized"
	StatusDispensing Status = "dispensing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Sale is a single bounded-amount fuel sale on one nozzle. The lifecycle is
// authorized -> dispensing -> completed, with cancellation allowed from any
// non-terminal state. Callers own serialization; Sale itself is not
// goroutine-safe.
type Sale struct {
	id               uuid.UUID
	dispenserID      uuid.UUID
	nozzleID         uuid.UUID
	tankID           uuid.UUID
	authorizedAmount float64
	currentAmount    float64
	gallons          float64
	pricePerGallon   float64
	status           Status
	startedAt        time.Time
	completedAt      *time.Time
}

// NewSale authorizes a sale, snapshotting pricePerGallon. The price stays
// fixed for the life of the sale regardless of later catalog updates.
func NewSale(dispenserID, nozzleID, tankID uuid.UUID, authorizedAmount, pricePerGallon float64, now time.Time) (*Sale, error) {
	if authorizedAmount <= 0 || math.IsNaN(authorizedAmount) || math.IsInf(authorizedAmount, 0) {
		return nil, ErrInvalidAmount
	}
	if pricePerGallon <= 0 || math.IsNaN(pricePerGallon) || math.IsInf(pricePerGallon, 0) {
		return nil, ErrInvalidPrice
	}

	return &Sale{
		id:               uuid.New(),
		dispenserID:      dispenserID,
		nozzleID:         nozzleID,
		tankID:           tankID,
		authorizedAmount: authorizedAmount,
		currentAmount:    0,
		gallons:          0,
		pricePerGallon:   pricePerGallon,
		status:           StatusAuthorized,
		startedAt:        now,
	}, nil
}

// BeginDispensing moves an authorized sale into dispensing. Returns false
// if the sale already left the authorized state.
func (s *Sale) BeginDispensing() bool {
	if s.status != StatusAuthorized {
		return false
	}
	s.status = StatusDispensing
	return true
}

// ApplyIncrement adds one dispensing step, clamped to the authorized ceiling,
// and recomputes gallons in the same call so the two never diverge.
// Returns true once the ceiling is reached.
func (s *Sale) ApplyIncrement(amount float64) (bool, error) {
	if s.status != StatusDispensing {
		return false, ErrNotDispensing
	}
	if amount < 0 || math.IsNaN(amount) {
		amount = 0
	}

	s.currentAmount = math.Min(s.currentAmount+amount, s.authorizedAmount)
	s.gallons = s.currentAmount / s.pricePerGallon
	return s.currentAmount >= s.authorizedAmount, nil
}

// Complete finalizes the sale. Completing an already-terminal sale is a
// no-op and returns false, so stop requests can race natural completion.
func (s *Sale) Complete(now time.Time) bool {
	if s.IsTerminal() {
		return false
	}
	s.status = StatusCompleted
	s.completedAt = &now
	return true
}

// Cancel terminates a sale that never finished its handshake (for example an
// authorization timeout). Terminal sales are left untouched.
func (s *Sale) Cancel(now time.Time) bool {
	if s.IsTerminal() {
		return false
	}
	s.status = StatusCancelled
	s.completedAt = &now
	return true
}

func (s *Sale) IsTerminal() bool {
	return s.status == StatusCompleted || s.status == StatusCancelled
}

func (s *Sale) ID() uuid.UUID            { return s.id }
func (s *Sale) DispenserID() uuid.UUID   { return s.dispenserID }
func (s *Sale) NozzleID() uuid.UUID      { return s.nozzleID }
func (s *Sale) TankID() uuid.UUID        { return s.tankID }
func (s *Sale) AuthorizedAmount() float64 { return s.authorizedAmount }
func (s *Sale) CurrentAmount() float64   { return s.currentAmount }
func (s *Sale) Gallons() float64         { return s.gallons }
func (s *Sale) PricePerGallon() float64  { return s.pricePerGallon }
func (s *Sale) Status() Status           { return s.status }
func (s *Sale) StartedAt() time.Time     { return s.startedAt }
func (s *Sale) CompletedAt() *time.Time  { return s.completedAt }

// SaleSnapshot is a value copy handed to observers so live state never leaks
// outside the owning engine's lock.
type SaleSnapshot struct {
	ID               uuid.UUID
	DispenserID      uuid.UUID
	NozzleID         uuid.UUID
	TankID           uuid.UUID
	AuthorizedAmount float64
	CurrentAmount    float64
	Gallons          float64
	PricePerGallon   float64
	Status           Status
	StartedAt        time.Time
	CompletedAt      *time.Time
}

func (s *Sale) Snapshot() SaleSnapshot {
	var completedAt *time.Time
	if s.completedAt != nil {
		t := *s.completedAt
		completedAt = &t
	}
	return SaleSnapshot{
		ID:               s.id,
		DispenserID:      s.dispenserID,
		NozzleID:         s.nozzleID,
		TankID:           s.tankID,
		AuthorizedAmount: s.authorizedAmount,
		CurrentAmount:    s.currentAmount,
		Gallons:          s.gallons,
		PricePerGallon:   s.pricePerGallon,
		Status:           s.status,
		StartedAt:        s.startedAt,
		CompletedAt:      completedAt,
	}
}
