package queries

import (
	"context"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
)

// PumpReadStore is the read surface of the pump engine.
type PumpReadStore interface {
	Sale(id uuid.UUID) (fuel.SaleSnapshot, error)
	ActiveSales() []fuel.SaleSnapshot
}

// TopologyReadStore is the read surface of the dispenser registry.
type TopologyReadStore interface {
	Dispenser(id uuid.UUID) (fuel.Dispenser, error)
	List() []fuel.Dispenser
	Tanks() []fuel.Tank
}

type FuelQueries interface {
	GetSale(ctx context.Context, id uuid.UUID) (*SaleView, error)
	ListActiveSales(ctx context.Context) ([]*SaleView, error)
	GetDispenser(ctx context.Context, id uuid.UUID) (*DispenserView, error)
	ListDispensers(ctx context.Context) ([]*DispenserView, error)
	ListTanks(ctx context.Context) ([]*TankView, error)
}

type fuelQueriesImpl struct {
	pump PumpReadStore
	topo TopologyReadStore
}

func NewFuelQueries(pump PumpReadStore, topo TopologyReadStore) FuelQueries {
	return &fuelQueriesImpl{pump: pump, topo: topo}
}

func (q *fuelQueriesImpl) GetSale(_ context.Context, id uuid.UUID) (*SaleView, error) {
	snap, err := q.pump.Sale(id)
	if err != nil {
		return nil, err
	}
	return NewSaleView(snap), nil
}

func (q *fuelQueriesImpl) ListActiveSales(_ context.Context) ([]*SaleView, error) {
	snaps := q.pump.ActiveSales()
	views := make([]*SaleView, len(snaps))
	for i, s := range snaps {
		views[i] = NewSaleView(s)
	}
	return views, nil
}

func (q *fuelQueriesImpl) GetDispenser(_ context.Context, id uuid.UUID) (*DispenserView, error) {
	d, err := q.topo.Dispenser(id)
	if err != nil {
		return nil, err
	}
	return NewDispenserView(d), nil
}

func (q *fuelQueriesImpl) ListDispensers(_ context.Context) ([]*DispenserView, error) {
	ds := q.topo.List()
	views := make([]*DispenserView, len(ds))
	for i, d := range ds {
		views[i] = NewDispenserView(d)
	}
	return views, nil
}

func (q *fuelQueriesImpl) ListTanks(_ context.Context) ([]*TankView, error) {
	tanks := q.topo.Tanks()
	views := make([]*TankView, len(tanks))
	for i, t := range tanks {
		views[i] = NewTankView(t)
	}
	return views, nil
}
