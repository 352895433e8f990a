//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	before := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	after := time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		coupon *builder.CouponBuilder
		at     time.Time
		want   coupon.Status
	}{
		{name: "active inside the window", coupon: builder.NewCouponBuilder(), at: now, want: coupon.StatusActive},
		{name: "inactive inside the window", coupon: builder.NewCouponBuilder().AsInactive(), at: now, want: coupon.StatusInactive},
		{name: "not started", coupon: builder.NewCouponBuilder(), at: before, want: coupon.StatusNotStarted},
		{name: "not started wins over inactive", coupon: builder.NewCouponBuilder().AsInactive(), at: before, want: coupon.StatusNotStarted},
		{name: "expired", coupon: builder.NewCouponBuilder(), at: after, want: coupon.StatusExpired},
		{name: "expired wins over the active flag", coupon: builder.NewCouponBuilder(), at: after, want: coupon.StatusExpired},
		{name: "expired wins over inactive", coupon: builder.NewCouponBuilder().AsInactive(), at: after, want: coupon.StatusExpired},
		{name: "no window and active", coupon: builder.NewCouponBuilder().WithoutWindow(), at: after, want: coupon.StatusActive},
		{name: "no window and inactive", coupon: builder.NewCouponBuilder().WithoutWindow().AsInactive(), at: after, want: coupon.StatusInactive},
		{
			name: "open-ended window after start",
			coupon: builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
				b.ValidUntil = nil
			}),
			at:   after,
			want: coupon.StatusActive,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, coupon.StatusOf(c.coupon.MustBuildDomain(), c.at))
		})
	}
}

func TestStatusOfUsageLimitDoesNotAffectDisplay(t *testing.T) {
	cp := builder.NewCouponBuilder().WithUsage(1, 1).MustBuildDomain()

	assert.Equal(t, coupon.StatusActive, coupon.StatusOf(cp, now))
	assert.False(t, cp.IsUsableAt(now))
}
