//go:build unit

package fuel_test

import (
	"math"
	"testing"
	"time"

	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.SaleBuilder)
	errIs  error
}

func TestNewSale(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, fuel.StatusAuthorized, actual.Status())
		assert.Equal(t, 50.0, actual.AuthorizedAmount())
		assert.Zero(t, actual.CurrentAmount())
		assert.Zero(t, actual.Gallons())
		assert.Nil(t, actual.CompletedAt())
		assert.False(t, actual.IsTerminal())
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero amount",
				mutate: func(b *builder.SaleBuilder) { b.AuthorizedAmount = 0 },
				errIs:  fuel.ErrInvalidAmount,
			},
			{
				name:   "negative amount",
				mutate: func(b *builder.SaleBuilder) { b.AuthorizedAmount = -25 },
				errIs:  fuel.ErrInvalidAmount,
			},
			{
				name:   "NaN amount",
				mutate: func(b *builder.SaleBuilder) { b.AuthorizedAmount = math.NaN() },
				errIs:  fuel.ErrInvalidAmount,
			},
			{
				name:   "infinite amount",
				mutate: func(b *builder.SaleBuilder) { b.AuthorizedAmount = math.Inf(1) },
				errIs:  fuel.ErrInvalidAmount,
			},
			{
				name:   "small positive amount",
				mutate: func(b *builder.SaleBuilder) { b.AuthorizedAmount = 0.01 },
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.SaleBuilder) { b.PricePerGallon = 0 },
				errIs:  fuel.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.SaleBuilder) { b.PricePerGallon = -3.459 },
				errIs:  fuel.ErrInvalidPrice,
			},
			{
				name:   "NaN price",
				mutate: func(b *builder.SaleBuilder) { b.PricePerGallon = math.NaN() },
				errIs:  fuel.ErrInvalidPrice,
			},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSaleBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, actual)
		})
	}
}

func TestSale_BeginDispensing(t *testing.T) {
	sale, err := builder.NewSaleBuilder().BuildDomain()
	require.NoError(t, err)

	assert.True(t, sale.BeginDispensing())
	assert.Equal(t, fuel.StatusDispensing, sale.Status())

	// Only the authorized -> dispensing edge exists.
	assert.False(t, sale.BeginDispensing())
	assert.Equal(t, fuel.StatusDispensing, sale.Status())
}

func TestSale_ApplyIncrement(t *testing.T) {
	t.Run("rejected before dispensing", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)

		_, err = sale.ApplyIncrement(2.0)
		assert.ErrorIs(t, err, fuel.ErrNotDispensing)
	})

	t.Run("accumulates and keeps gallons consistent", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)
		require.True(t, sale.BeginDispensing())

		reached, err := sale.ApplyIncrement(20.0)
		require.NoError(t, err)
		assert.False(t, reached)
		assert.InDelta(t, 20.0, sale.CurrentAmount(), 1e-9)
		assert.InDelta(t, 20.0/3.459, sale.Gallons(), 1e-9)

		reached, err = sale.ApplyIncrement(20.0)
		require.NoError(t, err)
		assert.False(t, reached)
		assert.InDelta(t, 40.0, sale.CurrentAmount(), 1e-9)
	})

	t.Run("clamps at the authorized ceiling", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)
		require.True(t, sale.BeginDispensing())

		_, err = sale.ApplyIncrement(49.0)
		require.NoError(t, err)

		reached, err := sale.ApplyIncrement(100.0)
		require.NoError(t, err)
		assert.True(t, reached)
		assert.InDelta(t, 50.0, sale.CurrentAmount(), 1e-9)
		assert.InDelta(t, 50.0/3.459, sale.Gallons(), 1e-9)
	})

	t.Run("negative and NaN increments count as zero", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)
		require.True(t, sale.BeginDispensing())

		_, err = sale.ApplyIncrement(10.0)
		require.NoError(t, err)

		reached, err := sale.ApplyIncrement(-5.0)
		require.NoError(t, err)
		assert.False(t, reached)
		assert.InDelta(t, 10.0, sale.CurrentAmount(), 1e-9)

		_, err = sale.ApplyIncrement(math.NaN())
		require.NoError(t, err)
		assert.InDelta(t, 10.0, sale.CurrentAmount(), 1e-9)
	})
}

func TestSale_Terminal(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC)

	t.Run("complete is a no-op on terminal sales", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, sale.Complete(now))
		assert.Equal(t, fuel.StatusCompleted, sale.Status())
		require.NotNil(t, sale.CompletedAt())
		assert.Equal(t, now, *sale.CompletedAt())

		later := now.Add(time.Minute)
		assert.False(t, sale.Complete(later))
		assert.Equal(t, now, *sale.CompletedAt())
	})

	t.Run("cancel does not overwrite completion", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)

		require.True(t, sale.Complete(now))
		assert.False(t, sale.Cancel(now.Add(time.Second)))
		assert.Equal(t, fuel.StatusCompleted, sale.Status())
	})

	t.Run("cancel from authorized", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)

		assert.True(t, sale.Cancel(now))
		assert.Equal(t, fuel.StatusCancelled, sale.Status())
		assert.True(t, sale.IsTerminal())
	})

	t.Run("increments are rejected after completion", func(t *testing.T) {
		sale, err := builder.NewSaleBuilder().BuildDomain()
		require.NoError(t, err)
		require.True(t, sale.BeginDispensing())
		require.True(t, sale.Complete(now))

		_, err = sale.ApplyIncrement(1.0)
		assert.ErrorIs(t, err, fuel.ErrNotDispensing)
	})
}

func TestSale_Snapshot(t *testing.T) {
	sale, err := builder.NewSaleBuilder().BuildDomain()
	require.NoError(t, err)
	require.True(t, sale.BeginDispensing())
	_, err = sale.ApplyIncrement(10.0)
	require.NoError(t, err)

	snap := sale.Snapshot()
	assert.Equal(t, sale.ID(), snap.ID)
	assert.InDelta(t, 10.0, snap.CurrentAmount, 1e-9)
	assert.Equal(t, fuel.StatusDispensing, snap.Status)

	// Later mutations must not leak into an already-taken snapshot.
	_, err = sale.ApplyIncrement(10.0)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, snap.CurrentAmount, 1e-9)
}
