//go:build unit || e2e

package builder

import (
	"time"

	"gin-order-admin/internal/domain/coupon"
	reqdto "gin-order-admin/internal/handler/dto/request"
	"gin-order-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	ID                uuid.UUID
	Code              string
	Description       string
	DiscountType      string
	DiscountValue     decimal.Decimal
	MaxDiscountAmount *decimal.Decimal
	MinOrderAmount    decimal.Decimal
	UsageLimit        *int
	UsedCount         int
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	IsActive          bool
	CreatedAt         time.Time
}

// NewCouponBuilder defaults to 20% off capped at 30, valid through October 2026.
func NewCouponBuilder() *CouponBuilder {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 10, 31, 23, 59, 59, 0, time.UTC)
	maxDiscount := decimal.NewFromInt(30)
	return &CouponBuilder{
		ID:                uuid.New(),
		Code:              "AUTUMN20",
		Description:       "Autumn sale",
		DiscountType:      "percentage",
		DiscountValue:     decimal.NewFromInt(20),
		MaxDiscountAmount: &maxDiscount,
		MinOrderAmount:    decimal.Zero,
		ValidFrom:         &from,
		ValidUntil:        &until,
		IsActive:          true,
		CreatedAt:         from,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) AsFixed(amount int64) *CouponBuilder {
	b.DiscountType = "fixed"
	b.DiscountValue = decimal.NewFromInt(amount)
	b.MaxDiscountAmount = nil
	return b
}

func (b *CouponBuilder) WithMinOrder(amount int64) *CouponBuilder {
	b.MinOrderAmount = decimal.NewFromInt(amount)
	return b
}

func (b *CouponBuilder) WithUsage(limit, used int) *CouponBuilder {
	b.UsageLimit = &limit
	b.UsedCount = used
	return b
}

func (b *CouponBuilder) WithoutWindow() *CouponBuilder {
	b.ValidFrom = nil
	b.ValidUntil = nil
	return b
}

func (b *CouponBuilder) AsInactive() *CouponBuilder {
	b.IsActive = false
	return b
}

// BuildDomain reconstructs a persisted coupon, so UsedCount is honored.
func (b *CouponBuilder) BuildDomain() (*coupon.Coupon, error) {
	code, err := coupon.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	kind, err := coupon.NewDiscountType(b.DiscountType)
	if err != nil {
		return nil, err
	}
	discount, err := coupon.NewDiscount(kind, b.DiscountValue, b.MaxDiscountAmount)
	if err != nil {
		return nil, err
	}
	window, err := coupon.NewWindow(b.ValidFrom, b.ValidUntil)
	if err != nil {
		return nil, err
	}
	return coupon.Reconstruct(
		b.ID, code, b.Description, discount, b.MinOrderAmount,
		b.UsageLimit, b.UsedCount, window, b.IsActive, b.CreatedAt, b.CreatedAt,
	), nil
}

func (b *CouponBuilder) MustBuildDomain() *coupon.Coupon {
	c, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return c
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:                b.ID,
		Code:              coupon.CanonicalCode(b.Code),
		Description:       b.Description,
		DiscountType:      b.DiscountType,
		DiscountValue:     b.DiscountValue,
		MaxDiscountAmount: b.MaxDiscountAmount,
		MinOrderAmount:    b.MinOrderAmount,
		UsageLimit:        b.UsageLimit,
		UsedCount:         b.UsedCount,
		ValidFrom:         b.ValidFrom,
		ValidUntil:        b.ValidUntil,
		IsActive:          b.IsActive,
		Status:            string(coupon.StatusActive),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.CreatedAt,
	}
}

func (b *CouponBuilder) BuildCreateDTO() reqdto.CreateCouponRequest {
	active := b.IsActive
	return reqdto.CreateCouponRequest{
		Code:              b.Code,
		Description:       b.Description,
		DiscountType:      b.DiscountType,
		DiscountValue:     b.DiscountValue,
		MaxDiscountAmount: b.MaxDiscountAmount,
		MinOrderAmount:    b.MinOrderAmount,
		UsageLimit:        b.UsageLimit,
		ValidFrom:         b.ValidFrom,
		ValidUntil:        b.ValidUntil,
		IsActive:          &active,
	}
}
