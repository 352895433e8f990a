package request

import (
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/pkg/patch"
	"gin-order-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CreateCouponRequest struct {
	Code              string           `json:"code" binding:"required,min=3,max=32"`
	Description       string           `json:"description" binding:"max=500"`
	DiscountType      string           `json:"discountType" binding:"required,oneof=percentage fixed"`
	DiscountValue     decimal.Decimal  `json:"discountValue" swaggertype:"string" example:"20"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount,omitempty" swaggertype:"string" example:"30.00"`
	MinOrderAmount    decimal.Decimal  `json:"minOrderAmount" swaggertype:"string" example:"100.00"`
	UsageLimit        *int             `json:"usageLimit,omitempty" binding:"omitempty,min=1"`
	ValidFrom         *time.Time       `json:"validFrom,omitempty"`
	ValidUntil        *time.Time       `json:"validUntil,omitempty"`
	IsActive          *bool            `json:"isActive,omitempty"`
}

func (r CreateCouponRequest) ToDomain(now time.Time) (*coupon.Coupon, error) {
	kind, err := coupon.NewDiscountType(r.DiscountType)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(kind, r.DiscountValue, r.MaxDiscountAmount)
	if err != nil {
		return nil, err
	}
	window, err := coupon.NewWindow(r.ValidFrom, r.ValidUntil)
	if err != nil {
		return nil, err
	}
	return coupon.NewCoupon(
		r.Code,
		r.Description,
		discount,
		r.MinOrderAmount,
		r.UsageLimit,
		window,
		patch.Coalesce(r.IsActive, true),
		now,
	)
}

// UpdateCouponRequest patches the editable terms. Nullable bounds are removed
// with the matching Clear flag because a JSON null cannot be told apart from an absent key.
type UpdateCouponRequest struct {
	Description            *string          `json:"description,omitempty" binding:"omitempty,max=500"`
	DiscountType           *string          `json:"discountType,omitempty" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue          *decimal.Decimal `json:"discountValue,omitempty" swaggertype:"string"`
	MaxDiscountAmount      *decimal.Decimal `json:"maxDiscountAmount,omitempty" swaggertype:"string"`
	MinOrderAmount         *decimal.Decimal `json:"minOrderAmount,omitempty" swaggertype:"string"`
	UsageLimit             *int             `json:"usageLimit,omitempty" binding:"omitempty,min=1"`
	ValidFrom              *time.Time       `json:"validFrom,omitempty"`
	ValidUntil             *time.Time       `json:"validUntil,omitempty"`
	ClearMaxDiscountAmount bool             `json:"clearMaxDiscountAmount"`
	ClearUsageLimit        bool             `json:"clearUsageLimit"`
	ClearValidFrom         bool             `json:"clearValidFrom"`
	ClearValidUntil        bool             `json:"clearValidUntil"`
}

func (r UpdateCouponRequest) ApplyTo(c *coupon.Coupon, now time.Time) error {
	current := c.Discount()

	kind := current.Type()
	if r.DiscountType != nil {
		k, err := coupon.NewDiscountType(*r.DiscountType)
		if err != nil {
			return err
		}
		kind = k
	}

	maxAmount := patch.CoalescePtr(r.MaxDiscountAmount, current.MaxAmount())
	if r.ClearMaxDiscountAmount || (kind == coupon.DiscountFixed && r.MaxDiscountAmount == nil) {
		maxAmount = nil
	}
	discount, err := coupon.NewDiscount(kind, patch.Coalesce(r.DiscountValue, current.Value()), maxAmount)
	if err != nil {
		return err
	}

	validFrom := clearable(r.ValidFrom, c.ValidFrom(), r.ClearValidFrom)
	validUntil := clearable(r.ValidUntil, c.ValidUntil(), r.ClearValidUntil)
	window, err := coupon.NewWindow(validFrom, validUntil)
	if err != nil {
		return err
	}

	return c.Revise(
		patch.Coalesce(r.Description, c.Description()),
		discount,
		patch.Coalesce(r.MinOrderAmount, c.MinOrderAmount()),
		clearable(r.UsageLimit, c.UsageLimit(), r.ClearUsageLimit),
		window,
		now,
	)
}

func clearable[T any](next, current *T, unset bool) *T {
	if unset {
		return nil
	}
	return patch.CoalescePtr(next, current)
}

type SetCouponActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

type CouponPreviewRequest struct {
	Code     string          `json:"code" binding:"required,max=64"`
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"string" example:"200.00"`
}

type ListCouponsQuery struct {
	PageQuery
	Q      string `form:"q" binding:"max=100"`
	Active *bool  `form:"active"`
}

func (q ListCouponsQuery) ToFilters() queries.CouponFilters {
	var f queries.CouponFilters
	if q.Q != "" {
		s := q.Q
		f.Search = &s
	}
	f.Active = q.Active
	return f
}
