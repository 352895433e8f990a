package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Evaluation failures. Callers decide whether a failure aborts the order.
var (
	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponInactive      = errors.New("coupon is inactive")
	ErrCouponNotYetValid   = errors.New("coupon is not yet valid")
	ErrCouponExpired       = errors.New("coupon has expired")
	ErrCouponUsageExceeded = errors.New("coupon usage limit reached")
	ErrCouponBelowMinimum  = errors.New("order subtotal is below the coupon minimum")
)

var rejectionReasons = []struct {
	err    error
	reason string
}{
	{ErrCouponNotFound, "not_found"},
	{ErrCouponInactive, "inactive"},
	{ErrCouponNotYetValid, "not_yet_valid"},
	{ErrCouponExpired, "expired"},
	{ErrCouponUsageExceeded, "usage_exceeded"},
	{ErrCouponBelowMinimum, "below_minimum"},
}

// DiscountOutcome carries what the commit step needs: the amount to persist and
// the usage count it was computed against.
type DiscountOutcome struct {
	CouponID      uuid.UUID
	Code          Code
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	Amount        decimal.Decimal
	UsedCount     int
}

// Evaluate checks c against an order subtotal at now. It never mutates c.
func Evaluate(c *Coupon, subtotal decimal.Decimal, now time.Time) (DiscountOutcome, error) {
	switch {
	case c == nil:
		return DiscountOutcome{}, ErrCouponNotFound
	case !c.isActive:
		return DiscountOutcome{}, ErrCouponInactive
	case c.window.NotStartedAt(now):
		return DiscountOutcome{}, ErrCouponNotYetValid
	case c.window.ExpiredAt(now):
		return DiscountOutcome{}, ErrCouponExpired
	case c.LimitReached():
		return DiscountOutcome{}, ErrCouponUsageExceeded
	case subtotal.LessThan(c.minOrderAmount):
		return DiscountOutcome{}, ErrCouponBelowMinimum
	}

	return DiscountOutcome{
		CouponID:      c.id,
		Code:          c.code,
		DiscountType:  c.discount.Type(),
		DiscountValue: c.discount.Value(),
		Amount:        c.discount.Amount(subtotal),
		UsedCount:     c.usedCount,
	}, nil
}

// RejectionReason maps an evaluation failure to a stable machine-readable code.
// It returns "" for any other error.
func RejectionReason(err error) string {
	for _, r := range rejectionReasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}

func IsRejection(err error) bool {
	return RejectionReason(err) != ""
}
