//go:build unit

package coupon_test

import (
	"strings"
	"testing"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCode(t *testing.T) {
	code, err := coupon.NewCode("  autumn-20 ")
	require.NoError(t, err)
	assert.Equal(t, coupon.Code("AUTUMN-20"), code)

	for _, bad := range []string{"", "AB", "WITH SPACE", "EMOJI🎉", strings.Repeat("X", 33)} {
		_, err := coupon.NewCode(bad)
		assert.ErrorIs(t, err, coupon.ErrInvalidCouponCode, bad)
	}
}

func TestNewDiscount(t *testing.T) {
	cap30 := dec("30")
	zero := decimal.Zero

	cases := []struct {
		name  string
		kind  coupon.DiscountType
		value string
		max   *decimal.Decimal
		errIs error
	}{
		{name: "percentage with cap", kind: coupon.DiscountPercentage, value: "20", max: &cap30},
		{name: "percentage 100", kind: coupon.DiscountPercentage, value: "100"},
		{name: "percentage over 100", kind: coupon.DiscountPercentage, value: "100.01", errIs: coupon.ErrInvalidDiscountPercent},
		{name: "negative percentage", kind: coupon.DiscountPercentage, value: "-1", errIs: coupon.ErrInvalidDiscountPercent},
		{name: "zero cap", kind: coupon.DiscountPercentage, value: "10", max: &zero, errIs: coupon.ErrInvalidMaxDiscount},
		{name: "fixed", kind: coupon.DiscountFixed, value: "15"},
		{name: "negative fixed", kind: coupon.DiscountFixed, value: "-5", errIs: coupon.ErrInvalidDiscountAmount},
		{name: "cap on fixed", kind: coupon.DiscountFixed, value: "15", max: &cap30, errIs: coupon.ErrMaxDiscountOnFixed},
		{name: "unknown type", kind: coupon.DiscountType("bogo"), value: "1", errIs: coupon.ErrInvalidDiscountType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := coupon.NewDiscount(c.kind, dec(c.value), c.max)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.kind, d.Type())
		})
	}
}

func TestNewWindow(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	until := from.Add(24 * time.Hour)

	_, err := coupon.NewWindow(&from, &until)
	require.NoError(t, err)

	_, err = coupon.NewWindow(&until, &from)
	require.ErrorIs(t, err, coupon.ErrInvalidValidityWindow)

	_, err = coupon.NewWindow(&from, &from)
	require.ErrorIs(t, err, coupon.ErrInvalidValidityWindow)

	w, err := coupon.NewWindow(nil, nil)
	require.NoError(t, err)
	assert.False(t, w.NotStartedAt(from))
	assert.False(t, w.ExpiredAt(until))
}

func TestCouponRevise(t *testing.T) {
	t.Run("usage limit cannot drop below used count", func(t *testing.T) {
		cp := builder.NewCouponBuilder().WithUsage(10, 4).MustBuildDomain()

		limit := 3
		err := cp.Revise(cp.Description(), cp.Discount(), cp.MinOrderAmount(), &limit, cp.Window(), now)
		require.ErrorIs(t, err, coupon.ErrUsageLimitBelowUsed)

		limit = 4
		require.NoError(t, cp.Revise(cp.Description(), cp.Discount(), cp.MinOrderAmount(), &limit, cp.Window(), now))
		assert.True(t, cp.LimitReached())
	})

	t.Run("negative minimum is rejected", func(t *testing.T) {
		cp := builder.NewCouponBuilder().MustBuildDomain()
		err := cp.Revise("", cp.Discount(), dec("-1"), nil, cp.Window(), now)
		require.ErrorIs(t, err, coupon.ErrInvalidMinOrderAmount)
	})

	t.Run("description length", func(t *testing.T) {
		cp := builder.NewCouponBuilder().MustBuildDomain()
		err := cp.Revise(strings.Repeat("a", 501), cp.Discount(), cp.MinOrderAmount(), nil, cp.Window(), now)
		require.ErrorIs(t, err, coupon.ErrDescriptionTooLong)
	})

	t.Run("activate and deactivate", func(t *testing.T) {
		cp := builder.NewCouponBuilder().MustBuildDomain()
		cp.Deactivate(now)
		assert.False(t, cp.IsActive())
		assert.Equal(t, now, cp.UpdatedAt())
		cp.Activate(now)
		assert.True(t, cp.IsUsableAt(now))
	})
}

func TestNewCoupon(t *testing.T) {
	discount, err := coupon.NewFixedDiscount(dec("5"))
	require.NoError(t, err)

	cp, err := coupon.NewCoupon("welcome5", " First order ", discount, decimal.Zero, nil, coupon.Window{}, true, now)
	require.NoError(t, err)
	assert.Equal(t, "WELCOME5", cp.Code().String())
	assert.Equal(t, "First order", cp.Description())
	assert.Zero(t, cp.UsedCount())
	assert.Equal(t, now, cp.CreatedAt())

	zero := 0
	_, err = coupon.NewCoupon("welcome5", "", discount, decimal.Zero, &zero, coupon.Window{}, true, now)
	require.ErrorIs(t, err, coupon.ErrInvalidUsageLimit)
}
