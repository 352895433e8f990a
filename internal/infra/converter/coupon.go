package converter

import (
	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/usecase/queries"
)

// CouponToDomain rebuilds the aggregate from a persisted row for command-side evaluation.
func CouponToDomain(v *queries.CouponView) (*coupon.Coupon, error) {
	kind, err := coupon.NewDiscountType(v.DiscountType)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(kind, v.DiscountValue, v.MaxDiscountAmount)
	if err != nil {
		return nil, err
	}
	window, err := coupon.NewWindow(v.ValidFrom, v.ValidUntil)
	if err != nil {
		return nil, err
	}

	return coupon.Reconstruct(
		v.ID,
		coupon.Code(v.Code),
		v.Description,
		discount,
		v.MinOrderAmount,
		v.UsageLimit,
		v.UsedCount,
		window,
		v.IsActive,
		v.CreatedAt,
		v.UpdatedAt,
	), nil
}
