package components

import (
	"gin-order-admin/internal/infra/cache"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/infra/readstore"
	"gin-order-admin/internal/infra/uow"
	"gin-order-admin/internal/pkg/config"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		uow.NewPostgresUoW,
		fx.Annotate(
			NewIdempotencyStore,
			fx.As(new(commands.IdempotencyStore)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		fx.Annotate(
			readstore.NewGiftCardReadStore,
			fx.As(new(queries.GiftCardReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewIdempotencyStore(rdb *redis.Client, cfg config.Config) *cache.RedisIdempotencyStore {
	return cache.NewRedisIdempotencyStore(rdb, cfg.Checkout.IdempotencyTTL)
}
