package shared

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/shared/$GOFILE -package=sharedmock

import (
	"context"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/domain/order"
	"gin-order-admin/internal/domain/user"
	"gin-order-admin/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Coupons() CouponRepository
	GiftCards() GiftCardRepository
	Notifications() NotificationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads return infra.KindNotFound errors for missing rows.
type CommandReads interface {
	CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error)
	GiftCardByNumber(ctx context.Context, number string) (*giftcard.GiftCard, error)
	// CouponReferenced reports whether any order was placed with the code.
	CouponReferenced(ctx context.Context, code string) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	UpdateStatus(ctx context.Context, tx db.DBTX, number string, status order.Status, at time.Time) (bool, error)
}

type CouponRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	Update(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error
	// IncrementUsage consumes one use only if used_count still equals expectedUsed
	// and the limit still allows it. false means a concurrent writer won.
	IncrementUsage(ctx context.Context, tx db.DBTX, id uuid.UUID, expectedUsed int) (bool, error)
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type GiftCardRepository interface {
	Create(ctx context.Context, tx db.DBTX, g *giftcard.GiftCard) error
	UpdateStatus(ctx context.Context, tx db.DBTX, g *giftcard.GiftCard) error
	// Redeem debits amount only if the balance still equals expectedBalance.
	Redeem(ctx context.Context, tx db.DBTX, id uuid.UUID, expectedBalance, amount decimal.Decimal) (bool, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type UserRepository interface {
	Create(ctx context.Context, tx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error
}
