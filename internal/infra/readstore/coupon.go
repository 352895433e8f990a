package readstore

import (
	"context"

	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/pkg/pgconv"
	"gin-order-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const couponColumns = `
    id, code, description, discount_type, discount_value, max_discount_amount, min_order_amount,
    usage_limit, used_count, valid_from, valid_until, is_active, created_at, updated_at`

const getCouponByCodeSQL = `SELECT` + couponColumns + ` FROM coupons WHERE code = $1`

const listCouponsSQL = `SELECT` + couponColumns + `
FROM coupons
WHERE ($1::text IS NULL OR code ILIKE $1 OR description ILIKE $1)
  AND ($2::boolean IS NULL OR is_active = $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $5`

const couponReferencedSQL = `SELECT EXISTS (SELECT 1 FROM orders WHERE coupon_code = $1)`

type CouponReadStore struct {
	db db.DBTX
}

func NewCouponReadStore(db db.DBTX) *CouponReadStore {
	return &CouponReadStore{db: db}
}

// FindByCode expects an already canonical code.
func (r *CouponReadStore) FindByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	view, err := scanCouponView(r.db.QueryRow(ctx, getCouponByCodeSQL, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return view, nil
}

func (r *CouponReadStore) List(ctx context.Context, filters queries.CouponFilters, after *queries.Keyset, limit int32) ([]*queries.CouponView, error) {
	afterAt, afterID := keysetArgs(after)
	var active pgtype.Bool
	if filters.Active != nil {
		active = pgtype.Bool{Bool: *filters.Active, Valid: true}
	}

	rows, err := r.db.Query(ctx, listCouponsSQL, containsPattern(filters.Search), active, afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponView
	for rows.Next() {
		view, err := scanCouponView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupons", err)
	}
	return views, nil
}

func (r *CouponReadStore) IsReferenced(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, couponReferencedSQL, code).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check coupon references", err)
	}
	return exists, nil
}

func scanCouponView(row rowScanner) (*queries.CouponView, error) {
	var (
		v                          queries.CouponView
		value, maxAmount, minOrder pgtype.Numeric
		usageLimit                 pgtype.Int4
		usedCount                  int32
		validFrom, validUntil      pgtype.Timestamptz
	)
	err := row.Scan(&v.ID, &v.Code, &v.Description, &v.DiscountType, &value, &maxAmount, &minOrder,
		&usageLimit, &usedCount, &validFrom, &validUntil, &v.IsActive, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if v.DiscountValue, err = pgconv.DecimalFromNumeric(value); err != nil {
		return nil, err
	}
	if v.MaxDiscountAmount, err = pgconv.DecimalPtrFromNumeric(maxAmount); err != nil {
		return nil, err
	}
	if v.MinOrderAmount, err = pgconv.DecimalFromNumeric(minOrder); err != nil {
		return nil, err
	}
	v.UsageLimit = pgconv.IntPtrFromPgtype(usageLimit)
	v.UsedCount = int(usedCount)
	v.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	v.ValidUntil = pgconv.TimePtrFromPgtype(validUntil)
	return &v, nil
}
