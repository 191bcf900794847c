package bootstrap

import (
	"context"

	"github.com/bk376/fuelflow-pos/internal/infra/metrics"
	"github.com/bk376/fuelflow-pos/internal/pkg/config"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
	),
)

func NewMetrics(lc fx.Lifecycle, cfg config.Config) (*metrics.Metrics, error) {
	m, provider, err := metrics.Init(context.Background(), cfg.Metrics)
	if err != nil {
		return nil, err
	}

	if provider != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return provider.Shutdown(ctx)
			},
		})
	}

	return m, nil
}
