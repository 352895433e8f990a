package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCouponNotFound   = errs.New("coupon not found")
	ErrNegativeSubtotal = errs.New("subtotal cannot be negative")
)

type CouponReadStore interface {
	FindByCode(ctx context.Context, code string) (*CouponView, error)
	List(ctx context.Context, filters CouponFilters, after *Keyset, limit int32) ([]*CouponView, error)
}

type CouponQueries interface {
	GetByCode(ctx context.Context, code string) (*CouponView, error)
	List(ctx context.Context, filters CouponFilters, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error)
	Preview(ctx context.Context, code string, subtotal decimal.Decimal) (*CouponPreview, error)
}

type couponQueriesImpl struct {
	readStore CouponReadStore
	clock     clock.Clock
}

func NewCouponQueries(readStore CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{readStore: readStore, clock: clk}
}

func (q *couponQueriesImpl) GetByCode(ctx context.Context, code string) (*CouponView, error) {
	view, err := q.find(ctx, code)
	if err != nil {
		return nil, err
	}
	view.Status = coupon.DeriveStatus(view.IsActive, view.ValidFrom, view.ValidUntil, q.clock.Now()).String()
	return view, nil
}

func (q *couponQueriesImpl) List(ctx context.Context, filters CouponFilters, cursor *Cursor, limit int) ([]*CouponView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.readStore.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, func(c *CouponView) (time.Time, uuid.UUID) {
		return c.CreatedAt, c.ID
	})

	now := q.clock.Now()
	for _, v := range page {
		v.Status = coupon.DeriveStatus(v.IsActive, v.ValidFrom, v.ValidUntil, now).String()
	}
	return page, next, nil
}

// Preview runs the same evaluation as checkout without consuming a use.
func (q *couponQueriesImpl) Preview(ctx context.Context, code string, subtotal decimal.Decimal) (*CouponPreview, error) {
	if subtotal.IsNegative() {
		return nil, errs.Mark(ErrNegativeSubtotal, errs.ErrDomainValidation)
	}
	view, err := q.find(ctx, code)
	if err != nil {
		return nil, err
	}

	c, err := couponFromView(view)
	if err != nil {
		return nil, errs.Wrap(err, "stored coupon is inconsistent")
	}

	preview := &CouponPreview{
		Code:           c.Code().String(),
		Subtotal:       subtotal.Round(2),
		DiscountAmount: decimal.Zero,
	}
	outcome, err := coupon.Evaluate(c, subtotal, q.clock.Now())
	if err != nil {
		if coupon.IsRejection(err) {
			preview.Reason = coupon.RejectionReason(err)
			return preview, nil
		}
		return nil, err
	}
	preview.Valid = true
	preview.DiscountAmount = outcome.Amount
	return preview, nil
}

func (q *couponQueriesImpl) find(ctx context.Context, code string) (*CouponView, error) {
	view, err := q.readStore.FindByCode(ctx, coupon.CanonicalCode(code))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}

func couponFromView(v *CouponView) (*coupon.Coupon, error) {
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
		v.ID, coupon.Code(v.Code), v.Description, discount, v.MinOrderAmount,
		v.UsageLimit, v.UsedCount, window, v.IsActive, v.CreatedAt, v.UpdatedAt,
	), nil
}
