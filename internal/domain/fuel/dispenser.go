package fuel

import (
	"github.com/google/uuid"
)

type DispenserStatus string

const (
	DispenserActive      DispenserStatus = "active"
	DispenserMaintenance DispenserStatus = "maintenance"
	DispenserOffline     DispenserStatus = "offline"
)

// Tank is the underground storage a nozzle draws from. Levels are in gallons.
type Tank struct {
	ID           uuid.UUID
	TankNumber   int
	ProductID    uuid.UUID
	Capacity     float64
	CurrentLevel float64
}

// Nozzle is the unit of sale: one fuel-grade outlet carrying its own price.
type Nozzle struct {
	ID           uuid.UUID
	DispenserID  uuid.UUID
	TankID       uuid.UUID
	ProductID    uuid.UUID
	NozzleNumber int
	FuelGrade    string
	PricePerUnit float64
}

type Dispenser struct {
	ID              uuid.UUID
	DispenserNumber int
	Status          DispenserStatus
	Nozzles         []Nozzle
}

// IsAvailable reports whether the dispenser may accept new authorizations.
// Per-nozzle exclusivity is enforced separately by the pump engine.
func (d Dispenser) IsAvailable() bool {
	return d.Status == DispenserActive
}

func (d Dispenser) Nozzle(id uuid.UUID) (Nozzle, bool) {
	for _, n := range d.Nozzles {
		if n.ID == id {
			return n, true
		}
	}
	return Nozzle{}, false
}
