// Package metrics exports business metrics over OTLP. When disabled by
// config, instruments are backed by the no-op meter so call sites never
// branch.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"

	"github.com/bk376/fuelflow-pos/internal/pkg/config"
)

type Metrics struct {
	PumpAuthorizations    metric.Int64Counter
	AuthorizationFailures metric.Int64Counter
	SalesCompleted        metric.Int64Counter
	GallonsDispensed      metric.Float64Histogram
	FuelRevenue           metric.Float64Counter
	ActiveSales           metric.Int64UpDownCounter
	TransactionsFinalized metric.Int64Counter
	TransactionRevenue    metric.Float64Counter
}

// Outcome attribute values for SalesCompleted.
const (
	OutcomeCeiling   = "ceiling_reached"
	OutcomeEarlyStop = "early_stop"
	OutcomeExternal  = "external_complete"
	OutcomeTimeout   = "authorization_timeout"
)

func OutcomeAttr(outcome string) metric.AddOption {
	return metric.WithAttributes(attribute.String("outcome", outcome))
}

// Init builds the meter provider and instrument set. The returned provider
// is nil when metrics are disabled; callers skip shutdown in that case.
func Init(ctx context.Context, cfg config.MetricsConfig) (*Metrics, *sdkmetric.MeterProvider, error) {
	if !cfg.Enabled {
		m, err := newInstruments(noop.NewMeterProvider().Meter("fuelflow-pos"))
		return m, nil, err
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter,
			sdkmetric.WithInterval(cfg.ExportPeriod))),
	)

	m, err := newInstruments(provider.Meter("fuelflow-pos"))
	if err != nil {
		return nil, nil, err
	}
	return m, provider, nil
}

// NewNoop returns instruments that record nothing; used by tests.
func NewNoop() *Metrics {
	m, _ := newInstruments(noop.NewMeterProvider().Meter("fuelflow-pos"))
	return m
}

func newInstruments(meter metric.Meter) (*Metrics, error) {
	var m Metrics
	var err error

	if m.PumpAuthorizations, err = meter.Int64Counter("pump_authorizations_total",
		metric.WithDescription("Pump authorizations accepted")); err != nil {
		return nil, err
	}
	if m.AuthorizationFailures, err = meter.Int64Counter("pump_authorization_failures_total",
		metric.WithDescription("Pump authorizations rejected")); err != nil {
		return nil, err
	}
	if m.SalesCompleted, err = meter.Int64Counter("fuel_sales_completed_total",
		metric.WithDescription("Fuel sales reaching a terminal state, by outcome")); err != nil {
		return nil, err
	}
	if m.GallonsDispensed, err = meter.Float64Histogram("fuel_gallons_dispensed",
		metric.WithDescription("Gallons dispensed per completed sale"),
		metric.WithUnit("gal")); err != nil {
		return nil, err
	}
	if m.FuelRevenue, err = meter.Float64Counter("fuel_revenue_total",
		metric.WithDescription("Dollar value of completed fuel sales")); err != nil {
		return nil, err
	}
	if m.ActiveSales, err = meter.Int64UpDownCounter("fuel_sales_active",
		metric.WithDescription("Sales currently authorized or dispensing")); err != nil {
		return nil, err
	}
	if m.TransactionsFinalized, err = meter.Int64Counter("transactions_finalized_total",
		metric.WithDescription("Checkout transactions persisted")); err != nil {
		return nil, err
	}
	if m.TransactionRevenue, err = meter.Float64Counter("transaction_revenue_total",
		metric.WithDescription("Dollar value of finalized transactions")); err != nil {
		return nil, err
	}

	return &m, nil
}
