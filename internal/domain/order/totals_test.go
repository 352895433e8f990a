//go:build unit

package order_test

import (
	"testing"

	"gin-order-admin/internal/domain/order"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeFinal(t *testing.T) {
	cases := []struct {
		name     string
		subtotal string
		discount string
		giftCard string
		shipping string
		want     string
	}{
		{name: "coupon and gift card", subtotal: "200", discount: "30", giftCard: "50", shipping: "10", want: "130.00"},
		{name: "rejected coupon leaves subtotal plus shipping", subtotal: "50", discount: "0", giftCard: "0", shipping: "10", want: "60.00"},
		{name: "no adjustments", subtotal: "99.99", discount: "0", giftCard: "0", shipping: "0", want: "99.99"},
		{name: "discount larger than subtotal", subtotal: "200", discount: "300", giftCard: "0", shipping: "10", want: "10.00"},
		{name: "gift card larger than what is owed", subtotal: "200", discount: "30", giftCard: "500", shipping: "10", want: "10.00"},
		{name: "coupon and gift card together exceed subtotal", subtotal: "100", discount: "80", giftCard: "80", shipping: "5", want: "5.00"},
		{name: "negative adjustments are ignored", subtotal: "100", discount: "-20", giftCard: "-5", shipping: "0", want: "100.00"},
		{name: "half-up rounding", subtotal: "10.005", discount: "0", giftCard: "0", shipping: "0", want: "10.01"},
		{name: "shipping only", subtotal: "0", discount: "0", giftCard: "0", shipping: "7.5", want: "7.50"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := order.ComputeFinal(dec(c.subtotal), dec(c.discount), dec(c.giftCard), dec(c.shipping))
			assert.Equal(t, c.want, got.StringFixed(2))
		})
	}
}

func TestCalculateTotals(t *testing.T) {
	t.Run("applied amounts are reported after clamping", func(t *testing.T) {
		totals, err := order.CalculateTotals(dec("200"), dec("30"), dec("500"), dec("10"))
		require.NoError(t, err)

		expected := order.Totals{
			Subtotal: dec("200"),
			Discount: dec("30"),
			GiftCard: dec("170"),
			Shipping: dec("10"),
			Final:    dec("10"),
		}
		if diff := cmp.Diff(expected, totals, decimalEqual); diff != "" {
			t.Errorf("Totals mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("negative subtotal", func(t *testing.T) {
		_, err := order.CalculateTotals(dec("-1"), decimal.Zero, decimal.Zero, decimal.Zero)
		require.ErrorIs(t, err, order.ErrNegativeSubtotal)
	})

	t.Run("negative shipping", func(t *testing.T) {
		_, err := order.CalculateTotals(dec("10"), decimal.Zero, decimal.Zero, dec("-1"))
		require.ErrorIs(t, err, order.ErrNegativeShippingFee)
	})
}

func TestComputeFinalBounds(t *testing.T) {
	amounts := []string{"0", "0.01", "19.99", "50", "130", "200", "1000"}
	for _, subtotal := range amounts {
		for _, discount := range amounts {
			for _, giftCard := range amounts {
				for _, shipping := range []string{"0", "10"} {
					final := order.ComputeFinal(dec(subtotal), dec(discount), dec(giftCard), dec(shipping))
					upper := dec(subtotal).Add(dec(shipping))

					if final.IsNegative() || final.GreaterThan(upper) {
						t.Fatalf("final %s out of [0, %s] for subtotal=%s discount=%s giftCard=%s shipping=%s",
							final, upper, subtotal, discount, giftCard, shipping)
					}
					if final.LessThan(dec(shipping)) {
						t.Fatalf("final %s below shipping %s", final, shipping)
					}
				}
			}
		}
	}
}

func TestSubtotal(t *testing.T) {
	a, err := order.NewLineItem("SKU-1", "Scarf", dec("19.99"), 3, order.LineItemOptions{})
	require.NoError(t, err)
	b, err := order.NewLineItem("SKU-2", "Hat", dec("5.00"), 1, order.LineItemOptions{})
	require.NoError(t, err)

	assert.Equal(t, "64.97", order.Subtotal([]order.LineItem{a, b}).StringFixed(2))
	assert.True(t, order.Subtotal(nil).IsZero())
}
