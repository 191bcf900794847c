// Package pump owns the active-sales set and the per-sale dispensing tasks.
// All sale state transitions happen under one engine mutex, so busy checks,
// increments, and terminal transitions are atomic with respect to each other.
package pump

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bk376/fuelflow-pos/internal/domain/fuel"
	"github.com/bk376/fuelflow-pos/internal/infra/metrics"
	"github.com/bk376/fuelflow-pos/internal/pkg/clock"
	"github.com/bk376/fuelflow-pos/internal/pkg/config"
	"github.com/bk376/fuelflow-pos/internal/pkg/errs"
)

// TopologyStore is the registry surface the engine needs: availability
// lookups at authorization time and tank bookkeeping on completion.
type TopologyStore interface {
	Dispenser(id uuid.UUID) (fuel.Dispenser, error)
	DeductTank(tankID uuid.UUID, gallons, lowThreshold float64) (remaining float64, low bool, err error)
}

// RateFactory builds one strategy per sale so strategies may keep
// per-sale state.
type RateFactory func() fuel.RateStrategy

type activeSale struct {
	sale    *fuel.Sale
	cancel  context.CancelFunc
	evictAt time.Time // zero until terminal
}

type Engine struct {
	mu       sync.Mutex
	sales    map[uuid.UUID]*activeSale
	byNozzle map[uuid.UUID]uuid.UUID // nozzle -> active sale

	topo    TopologyStore
	newRate RateFactory
	clock   clock.Clock
	cfg     config.PumpConfig
	logger  *slog.Logger
	metrics *metrics.Metrics

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewEngine(topo TopologyStore, newRate RateFactory, clk clock.Clock, cfg config.PumpConfig, logger *slog.Logger, m *metrics.Metrics) *Engine {
	baseCtx, cancel := context.WithCancel(context.Background())
	return &Engine{
		sales:    make(map[uuid.UUID]*activeSale),
		byNozzle: make(map[uuid.UUID]uuid.UUID),
		topo:     topo,
		newRate:  newRate,
		clock:    clk,
		cfg:      cfg,
		logger:   logger,
		metrics:  m,
		baseCtx:  baseCtx,
		cancel:   cancel,
	}
}

// Start launches the eviction janitor. Dispensing tasks are started lazily
// per authorization and do not depend on Start.
func (e *Engine) Start(_ context.Context) error {
	e.wg.Add(1)
	go e.janitor()
	return nil
}

// Stop cancels every in-flight task and waits for them to drain.
func (e *Engine) Stop(_ context.Context) error {
	e.cancel()
	e.wg.Wait()
	return nil
}

// Authorize reserves a nozzle for a bounded-amount sale. The busy check and
// sale creation are one critical section: of concurrent calls for the same
// nozzle, exactly one succeeds and the rest fail with ErrNozzleBusy.
func (e *Engine) Authorize(_ context.Context, dispenserID, nozzleID uuid.UUID, amount float64) (fuel.SaleSnapshot, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fuel.SaleSnapshot{}, e.rejected(errs.ErrInvalidAmount)
	}

	d, err := e.topo.Dispenser(dispenserID)
	if err != nil {
		return fuel.SaleSnapshot{}, e.rejected(err)
	}
	if !d.IsAvailable() {
		return fuel.SaleSnapshot{}, e.rejected(errs.ErrDispenserUnavailable)
	}
	nozzle, ok := d.Nozzle(nozzleID)
	if !ok {
		return fuel.SaleSnapshot{}, e.rejected(errs.ErrNozzleNotFound)
	}

	e.mu.Lock()
	if _, busy := e.byNozzle[nozzleID]; busy {
		e.mu.Unlock()
		return fuel.SaleSnapshot{}, e.rejected(errs.ErrNozzleBusy)
	}

	sale, err := fuel.NewSale(dispenserID, nozzleID, nozzle.TankID, amount, nozzle.PricePerUnit, e.clock.Now())
	if err != nil {
		e.mu.Unlock()
		return fuel.SaleSnapshot{}, e.rejected(errs.Mark(err, errs.ErrInvalidAmount))
	}

	saleCtx, cancelSale := context.WithCancel(e.baseCtx)
	as := &activeSale{sale: sale, cancel: cancelSale}
	e.sales[sale.ID()] = as
	e.byNozzle[nozzleID] = sale.ID()
	snap := sale.Snapshot()
	e.mu.Unlock()

	e.wg.Add(1)
	go e.run(saleCtx, as)

	e.metrics.PumpAuthorizations.Add(e.baseCtx, 1)
	e.metrics.ActiveSales.Add(e.baseCtx, 1)
	e.logger.Info("pump authorized",
		"sale_id", snap.ID,
		"dispenser_id", dispenserID,
		"nozzle_id", nozzleID,
		"authorized_amount", snap.AuthorizedAmount,
		"price_per_gallon", snap.PricePerGallon,
	)
	return snap, nil
}

// Complete terminates a sale from outside the progression task. Completing
// an already-terminal sale is a no-op so stop requests can race natural
// completion.
func (e *Engine) Complete(_ context.Context, saleID uuid.UUID) error {
	e.mu.Lock()
	as, ok := e.sales[saleID]
	if !ok {
		e.mu.Unlock()
		return errs.ErrSaleNotFound
	}
	if as.sale.IsTerminal() {
		e.mu.Unlock()
		return nil
	}
	e.finalizeLocked(as)
	snap := as.sale.Snapshot()
	e.mu.Unlock()

	as.cancel()
	e.afterTerminal(snap, metrics.OutcomeExternal)
	return nil
}

// Sale returns a point-in-time copy; terminal sales stay queryable for the
// grace period.
func (e *Engine) Sale(id uuid.UUID) (fuel.SaleSnapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	as, ok := e.sales[id]
	if !ok {
		return fuel.SaleSnapshot{}, errs.ErrSaleNotFound
	}
	return as.sale.Snapshot(), nil
}

func (e *Engine) ActiveSales() []fuel.SaleSnapshot {
	e.mu.Lock()
	out := make([]fuel.SaleSnapshot, 0, len(e.sales))
	for _, as := range e.sales {
		out = append(out, as.sale.Snapshot())
	}
	e.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// run is the per-sale progression task: hardware handshake, then bounded
// increments until the ceiling, an early stop, or external termination.
func (e *Engine) run(ctx context.Context, as *activeSale) {
	defer e.wg.Done()

	strategy := e.newRate()

	handshake := time.NewTimer(e.cfg.HandshakeDelay)
	defer handshake.Stop()

	var authTimeout <-chan time.Time
	if e.cfg.AuthorizationTimeout > 0 {
		t := time.NewTimer(e.cfg.AuthorizationTimeout)
		defer t.Stop()
		authTimeout = t.C
	}

	select {
	case <-ctx.Done():
		return
	case <-authTimeout:
		e.timeout(as)
		return
	case <-handshake.C:
	}

	e.mu.Lock()
	if !as.sale.BeginDispensing() {
		// Terminated externally during the handshake.
		e.mu.Unlock()
		return
	}
	saleID := as.sale.ID()
	e.mu.Unlock()
	e.logger.Info("dispensing started", "sale_id", saleID)

	ticker := time.NewTicker(e.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if e.step(as, strategy) {
				return
			}
		}
	}
}

// step applies one increment. The terminal check and the increment share the
// engine lock, so no increment can land after Complete has been accepted.
func (e *Engine) step(as *activeSale, strategy fuel.RateStrategy) (done bool) {
	e.mu.Lock()
	if as.sale.IsTerminal() {
		e.mu.Unlock()
		return true
	}

	reached, err := as.sale.ApplyIncrement(strategy.NextIncrement())
	if err != nil {
		e.mu.Unlock()
		return true
	}

	outcome := ""
	switch {
	case reached:
		outcome = metrics.OutcomeCeiling
	case strategy.ShouldStop():
		outcome = metrics.OutcomeEarlyStop
	}
	if outcome == "" {
		e.mu.Unlock()
		return false
	}

	e.finalizeLocked(as)
	snap := as.sale.Snapshot()
	e.mu.Unlock()

	as.cancel()
	e.afterTerminal(snap, outcome)
	return true
}

// finalizeLocked marks the sale completed, frees its nozzle, and schedules
// eviction. Callers must hold e.mu.
func (e *Engine) finalizeLocked(as *activeSale) {
	now := e.clock.Now()
	as.sale.Complete(now)
	as.evictAt = now.Add(e.cfg.GracePeriod)
	delete(e.byNozzle, as.sale.NozzleID())
}

// timeout cancels a sale that never finished its authorization handshake.
func (e *Engine) timeout(as *activeSale) {
	e.mu.Lock()
	if !as.sale.Cancel(e.clock.Now()) {
		e.mu.Unlock()
		return
	}
	as.evictAt = e.clock.Now().Add(e.cfg.GracePeriod)
	delete(e.byNozzle, as.sale.NozzleID())
	snap := as.sale.Snapshot()
	e.mu.Unlock()

	as.cancel()
	e.metrics.SalesCompleted.Add(e.baseCtx, 1, metrics.OutcomeAttr(metrics.OutcomeTimeout))
	e.metrics.ActiveSales.Add(e.baseCtx, -1)
	e.logger.Warn("authorization timed out", "sale_id", snap.ID, "nozzle_id", snap.NozzleID)
}

// afterTerminal handles the bookkeeping that does not need the engine lock:
// metrics, tank depletion, and logging.
func (e *Engine) afterTerminal(snap fuel.SaleSnapshot, outcome string) {
	e.metrics.SalesCompleted.Add(e.baseCtx, 1, metrics.OutcomeAttr(outcome))
	e.metrics.ActiveSales.Add(e.baseCtx, -1)
	e.metrics.GallonsDispensed.Record(e.baseCtx, snap.Gallons)
	e.metrics.FuelRevenue.Add(e.baseCtx, snap.CurrentAmount)

	e.logger.Info("fuel sale completed",
		"sale_id", snap.ID,
		"outcome", outcome,
		"amount", snap.CurrentAmount,
		"gallons", snap.Gallons,
	)

	if snap.Gallons <= 0 {
		return
	}
	remaining, low, err := e.topo.DeductTank(snap.TankID, snap.Gallons, e.cfg.LowTankThreshold)
	if err != nil {
		e.logger.Error("tank deduction failed", "tank_id", snap.TankID, "error", err)
		return
	}
	if low {
		e.logger.Warn("tank level low", "tank_id", snap.TankID, "remaining_gallons", remaining)
	}
}

// janitor evicts terminal sales once their grace period expires. Eviction is
// pure cleanup and never changes finalized amounts.
func (e *Engine) janitor() {
	defer e.wg.Done()

	interval := e.cfg.GracePeriod / 2
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-e.baseCtx.Done():
			return
		case <-ticker.C:
			e.evictExpired()
		}
	}
}

func (e *Engine) evictExpired() {
	now := e.clock.Now()

	e.mu.Lock()
	defer e.mu.Unlock()
	for id, as := range e.sales {
		if as.sale.IsTerminal() && !as.evictAt.After(now) {
			delete(e.sales, id)
			e.logger.Debug("sale evicted", "sale_id", id)
		}
	}
}

func (e *Engine) rejected(err error) error {
	e.metrics.AuthorizationFailures.Add(e.baseCtx, 1)
	return err
}
