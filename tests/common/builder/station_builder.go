//go:build unit

package builder

import (
	domfuel "github.com/bk376/fuelflow-pos/internal/domain/fuel"

	"github.com/google/uuid"
)

// StationBuilder assembles a single-dispenser topology for pump and registry
// tests: two nozzles on one dispenser, each drawing from its own tank.
type StationBuilder struct {
	DispenserStatus domfuel.DispenserStatus
	PricePerUnit    float64
	TankCapacity    float64
	TankLevel       float64
}

func NewStationBuilder() *StationBuilder {
	return &StationBuilder{
		DispenserStatus: domfuel.DispenserActive,
		PricePerUnit:    3.459,
		TankCapacity:    10000,
		TankLevel:       7500,
	}
}

func (b *StationBuilder) With(mutate func(*StationBuilder)) *StationBuilder {
	mutate(b)
	return b
}

func (b *StationBuilder) Build() (domfuel.Dispenser, []domfuel.Tank) {
	dispenserID := uuid.New()
	d := domfuel.Dispenser{
		ID:              dispenserID,
		DispenserNumber: 1,
		Status:          b.DispenserStatus,
	}

	tanks := make([]domfuel.Tank, 0, 2)
	for i := 1; i <= 2; i++ {
		tank := domfuel.Tank{
			ID:           uuid.New(),
			TankNumber:   i,
			ProductID:    uuid.New(),
			Capacity:     b.TankCapacity,
			CurrentLevel: b.TankLevel,
		}
		tanks = append(tanks, tank)
		d.Nozzles = append(d.Nozzles, domfuel.Nozzle{
			ID:           uuid.New(),
			DispenserID:  dispenserID,
			TankID:       tank.ID,
			ProductID:    tank.ProductID,
			NozzleNumber: i,
			FuelGrade:    "Regular 87",
			PricePerUnit: b.PricePerUnit,
		})
	}

	return d, tanks
}
