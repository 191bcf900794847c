//go:build unit

package registry_test

import (
	"testing"

	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/infra/registry"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
	"github.com/bk376/fuelflow-pos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Dispenser(t *testing.T) {
	d, tanks := builder.NewStationBuilder().Build()
	reg := registry.New([]fuel.Dispenser{d}, tanks)

	t.Run("found", func(t *testing.T) {
		got, err := reg.Dispenser(d.ID)
		require.NoError(t, err)
		assert.Equal(t, d.ID, got.ID)
		assert.Len(t, got.Nozzles, 2)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := reg.Dispenser(uuid.New())
		assert.ErrorIs(t, err, errs.ErrDispenserNotFound)
	})

	t.Run("returned copy does not alias internal state", func(t *testing.T) {
		got, err := reg.Dispenser(d.ID)
		require.NoError(t, err)
		got.Nozzles[0].PricePerUnit = 99.99

		again, err := reg.Dispenser(d.ID)
		require.NoError(t, err)
		assert.InDelta(t, 3.459, again.Nozzles[0].PricePerUnit, 1e-9)
	})
}

func TestRegistry_SetStatus(t *testing.T) {
	d, tanks := builder.NewStationBuilder().Build()
	reg := registry.New([]fuel.Dispenser{d}, tanks)

	require.NoError(t, reg.SetStatus(d.ID, fuel.DispenserMaintenance))

	got, err := reg.Dispenser(d.ID)
	require.NoError(t, err)
	assert.Equal(t, fuel.DispenserMaintenance, got.Status)
	assert.False(t, got.IsAvailable())

	assert.ErrorIs(t, reg.SetStatus(uuid.New(), fuel.DispenserOffline), errs.ErrDispenserNotFound)
}

func TestRegistry_SetNozzlePrice(t *testing.T) {
	d, tanks := builder.NewStationBuilder().Build()
	reg := registry.New([]fuel.Dispenser{d}, tanks)

	productID := d.Nozzles[0].ProductID
	updated := reg.SetNozzlePrice(productID, 3.599)
	assert.Equal(t, 1, updated)

	got, err := reg.Dispenser(d.ID)
	require.NoError(t, err)
	assert.InDelta(t, 3.599, got.Nozzles[0].PricePerUnit, 1e-9)
	assert.InDelta(t, 3.459, got.Nozzles[1].PricePerUnit, 1e-9)

	assert.Zero(t, reg.SetNozzlePrice(uuid.New(), 4.00))
}

func TestRegistry_DeductTank(t *testing.T) {
	d, tanks := builder.NewStationBuilder().
		With(func(b *builder.StationBuilder) {
			b.TankCapacity = 100
			b.TankLevel = 30
		}).
		Build()
	reg := registry.New([]fuel.Dispenser{d}, tanks)
	tankID := tanks[0].ID

	t.Run("deducts and reports low level", func(t *testing.T) {
		remaining, low, err := reg.DeductTank(tankID, 5, 0.2)
		require.NoError(t, err)
		assert.InDelta(t, 25.0, remaining, 1e-9)
		assert.False(t, low)

		remaining, low, err = reg.DeductTank(tankID, 6, 0.2)
		require.NoError(t, err)
		assert.InDelta(t, 19.0, remaining, 1e-9)
		assert.True(t, low)
	})

	t.Run("clamps at empty", func(t *testing.T) {
		remaining, low, err := reg.DeductTank(tankID, 1000, 0.2)
		require.NoError(t, err)
		assert.Zero(t, remaining)
		assert.True(t, low)
	})

	t.Run("unknown tank", func(t *testing.T) {
		_, _, err := reg.DeductTank(uuid.New(), 1, 0.2)
		assert.ErrorIs(t, err, errs.ErrTankNotFound)
	})
}
