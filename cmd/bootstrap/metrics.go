package bootstrap

import (
	"gin-order-admin/internal/handler/middleware"
	"gin-order-admin/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Each fx app owns its registry so e2e suites can build several apps per process.
var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer {
			return reg
		},
		middleware.NewHTTPMetrics,
	),
)
