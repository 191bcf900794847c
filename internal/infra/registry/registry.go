// Package registry is the dispenser topology read model: dispensers, their
// nozzles, and the tanks behind them. Status transitions are operator-driven;
// the pump engine only reads availability and deducts tank levels on
// completed sales.
package registry

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
)

type Registry struct {
	mu         sync.RWMutex
	dispensers map[uuid.UUID]*fuel.Dispenser
	order      []uuid.UUID // stable listing order
	tanks      map[uuid.UUID]*fuel.Tank
}

func New(dispensers []fuel.Dispenser, tanks []fuel.Tank) *Registry {
	r := &Registry{
		dispensers: make(map[uuid.UUID]*fuel.Dispenser, len(dispensers)),
		order:      make([]uuid.UUID, 0, len(dispensers)),
		tanks:      make(map[uuid.UUID]*fuel.Tank, len(tanks)),
	}
	for i := range dispensers {
		d := dispensers[i]
		r.dispensers[d.ID] = &d
		r.order = append(r.order, d.ID)
	}
	for i := range tanks {
		t := tanks[i]
		r.tanks[t.ID] = &t
	}
	return r
}

func (r *Registry) Dispenser(id uuid.UUID) (fuel.Dispenser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.dispensers[id]
	if !ok {
		return fuel.Dispenser{}, errs.ErrDispenserNotFound
	}
	return copyDispenser(d), nil
}

func (r *Registry) List() []fuel.Dispenser {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fuel.Dispenser, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, copyDispenser(r.dispensers[id]))
	}
	return out
}

// SetStatus applies an operator-driven lifecycle transition
// (active <-> maintenance <-> offline).
func (r *Registry) SetStatus(id uuid.UUID, status fuel.DispenserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.dispensers[id]
	if !ok {
		return errs.ErrDispenserNotFound
	}
	d.Status = status
	return nil
}

// SetNozzlePrice pushes a catalog price update onto every nozzle bound to
// the product. Returns the number of nozzles touched.
func (r *Registry) SetNozzlePrice(productID uuid.UUID, price float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := 0
	for _, d := range r.dispensers {
		for i := range d.Nozzles {
			if d.Nozzles[i].ProductID == productID {
				d.Nozzles[i].PricePerUnit = price
				updated++
			}
		}
	}
	return updated
}

func (r *Registry) Tanks() []fuel.Tank {
	r.mu.RLock()
	out := make([]fuel.Tank, 0, len(r.tanks))
	for _, t := range r.tanks {
		out = append(out, *t)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].TankNumber < out[j].TankNumber })
	return out
}

// DeductTank removes dispensed gallons from a tank, clamping at empty.
// The low flag reports whether the level is at or below lowThreshold of
// capacity after the deduction.
func (r *Registry) DeductTank(tankID uuid.UUID, gallons, lowThreshold float64) (remaining float64, low bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tanks[tankID]
	if !ok {
		return 0, false, errs.ErrTankNotFound
	}

	t.CurrentLevel -= gallons
	if t.CurrentLevel < 0 {
		t.CurrentLevel = 0
	}
	return t.CurrentLevel, t.CurrentLevel <= t.Capacity*lowThreshold, nil
}

func copyDispenser(d *fuel.Dispenser) fuel.Dispenser {
	out := *d
	out.Nozzles = make([]fuel.Nozzle, len(d.Nozzles))
	copy(out.Nozzles, d.Nozzles)
	return out
}
