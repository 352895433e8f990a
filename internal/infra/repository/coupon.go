package repository

import (
	"context"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const insertCouponSQL = `
INSERT INTO coupons (
    id, code, description, discount_type, discount_value, max_discount_amount,
    min_order_amount, usage_limit, used_count, valid_from, valid_until, is_active, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

// used_count is left alone here; only IncrementUsage touches it.
const updateCouponSQL = `
UPDATE coupons SET
    description = $2, discount_type = $3, discount_value = $4, max_discount_amount = $5,
    min_order_amount = $6, usage_limit = $7, valid_from = $8, valid_until = $9,
    is_active = $10, updated_at = $11
WHERE id = $1 AND (($7::int IS NULL) OR used_count <= $7::int)`

// Compare-and-set on used_count. The limit is rechecked in SQL so a stale read can never overshoot it.
const incrementCouponUsageSQL = `
UPDATE coupons SET used_count = used_count + 1, updated_at = now()
WHERE id = $1
  AND used_count = $2
  AND is_active
  AND (usage_limit IS NULL OR used_count < usage_limit)`

const deleteCouponSQL = `DELETE FROM coupons WHERE id = $1`

type CouponRepository struct{}

func NewCouponRepository() *CouponRepository {
	return &CouponRepository{}
}

func (r *CouponRepository) Create(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	d := c.Discount()
	_, err := tx.Exec(ctx, insertCouponSQL,
		c.ID(), c.Code().String(), c.Description(), d.Type().String(),
		pgconv.DecimalToNumeric(d.Value()), pgconv.DecimalPtrToNumeric(d.MaxAmount()),
		pgconv.DecimalToNumeric(c.MinOrderAmount()), pgconv.IntPtrToPgtype(c.UsageLimit()), c.UsedCount(),
		pgconv.TimePtrToPgtype(c.ValidFrom()), pgconv.TimePtrToPgtype(c.ValidUntil()),
		c.IsActive(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) Update(ctx context.Context, tx db.DBTX, c *coupon.Coupon) error {
	d := c.Discount()
	tag, err := tx.Exec(ctx, updateCouponSQL,
		c.ID(), c.Description(), d.Type().String(),
		pgconv.DecimalToNumeric(d.Value()), pgconv.DecimalPtrToNumeric(d.MaxAmount()),
		pgconv.DecimalToNumeric(c.MinOrderAmount()), pgconv.IntPtrToPgtype(c.UsageLimit()),
		pgconv.TimePtrToPgtype(c.ValidFrom()), pgconv.TimePtrToPgtype(c.ValidUntil()),
		c.IsActive(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon changed concurrently", nil, infra.KindConflict)
	}
	return nil
}

func (r *CouponRepository) IncrementUsage(ctx context.Context, tx db.DBTX, id uuid.UUID, expectedUsed int) (bool, error) {
	tag, err := tx.Exec(ctx, incrementCouponUsageSQL, id, expectedUsed)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment coupon usage", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Delete fails with infra.KindForeignKeyViolated if an order references the coupon.
func (r *CouponRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteCouponSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}
