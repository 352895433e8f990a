package components

import (
	"gin-order-admin/internal/infra/metrics"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/config"
	"gin-order-admin/internal/usecase"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		metrics.NewCheckoutRecorder,
		fx.As(new(commands.CheckoutMetrics)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewOrderCommands,
		commands.NewCouponCommands,
		commands.NewGiftCardCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		func(rs queries.OrderReadStore, cfg config.Config) queries.OrderQueries {
			return queries.NewOrderQueries(rs, cfg.Checkout.ExportMaxRows)
		},
		queries.NewCouponQueries,
		queries.NewGiftCardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
