//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/domain/order"
	"gin-order-admin/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func TestNewDraft(t *testing.T) {
	t.Run("codes are canonicalized and blanks dropped", func(t *testing.T) {
		draft, err := builder.NewOrderBuilder().
			WithCoupon(" autumn20 ").
			WithGiftCard("   ").
			BuildDTO().
			ToDomain()
		require.NoError(t, err)

		require.NotNil(t, draft.CouponCode())
		assert.Equal(t, "AUTUMN20", *draft.CouponCode())
		assert.False(t, draft.HasGiftCard())
		assert.Equal(t, "200.00", draft.Subtotal().StringFixed(2))
	})

	cases := []struct {
		name   string
		mutate func(*builder.OrderBuilder)
		errIs  error
	}{
		{name: "empty cart", mutate: func(b *builder.OrderBuilder) { b.Items = nil }, errIs: order.ErrEmptyCart},
		{name: "negative shipping", mutate: func(b *builder.OrderBuilder) { b.WithShippingFee("-1") }, errIs: order.ErrNegativeShippingFee},
		{name: "unit price with sub-cent precision", mutate: func(b *builder.OrderBuilder) { b.Items[0].UnitPrice = dec("9.999") }, errIs: order.ErrUnitPricePrecision},
		{name: "negative unit price", mutate: func(b *builder.OrderBuilder) { b.Items[0].UnitPrice = dec("-1") }, errIs: order.ErrNegativeUnitPrice},
		{name: "zero quantity", mutate: func(b *builder.OrderBuilder) { b.Items[0].Quantity = 0 }, errIs: order.ErrInvalidQuantity},
		{name: "blank product id", mutate: func(b *builder.OrderBuilder) { b.Items[0].ProductID = "  " }, errIs: order.ErrMissingProductID},
		{name: "blank customer name", mutate: func(b *builder.OrderBuilder) { b.Customer.Name = "" }, errIs: order.ErrMissingCustomerName},
		{name: "bad customer email", mutate: func(b *builder.OrderBuilder) { b.Customer.Email = "nope" }, errIs: order.ErrInvalidCustomerEmail},
		{name: "blank address", mutate: func(b *builder.OrderBuilder) { b.Customer.Address = "" }, errIs: order.ErrMissingAddress},
		{name: "bad payment method", mutate: func(b *builder.OrderBuilder) { b.PaymentMethod = "Credit Card!" }, errIs: order.ErrInvalidPaymentMethod},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewOrderBuilder().With(c.mutate).BuildDTO().ToDomain()
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestNewOrder(t *testing.T) {
	draft, err := builder.NewOrderBuilder().WithCoupon("AUTUMN20").WithGiftCard("GC-1A2B-3C4D-5E6F").BuildDTO().ToDomain()
	require.NoError(t, err)

	c := builder.NewCouponBuilder().MustBuildDomain()
	discount, err := coupon.Evaluate(c, draft.Subtotal(), now)
	require.NoError(t, err)

	g := builder.NewGiftCardBuilder().MustBuildDomain()
	redemption, err := giftcard.Evaluate(g, draft.Subtotal().Sub(discount.Amount))
	require.NoError(t, err)

	number, err := order.GenerateNumber(now)
	require.NoError(t, err)

	t.Run("totals combine both outcomes", func(t *testing.T) {
		o, err := order.NewOrder(number, draft, &discount, &redemption, now)
		require.NoError(t, err)

		totals := o.Totals()
		assert.Equal(t, "200.00", totals.Subtotal.StringFixed(2))
		assert.Equal(t, "30.00", totals.Discount.StringFixed(2))
		assert.Equal(t, "50.00", totals.GiftCard.StringFixed(2))
		assert.Equal(t, "10.00", totals.Shipping.StringFixed(2))
		assert.Equal(t, "130.00", totals.Final.StringFixed(2))

		assert.Equal(t, order.StatusPending, o.Status())
		require.NotNil(t, o.CouponCode())
		assert.Equal(t, "AUTUMN20", o.CouponCode().String())
		require.NotNil(t, o.GiftCardNumber())
		assert.Equal(t, "GC-1A2B-3C4D-5E6F", o.GiftCardNumber().String())
	})

	t.Run("outcomes must match the draft", func(t *testing.T) {
		_, err := order.NewOrder(number, draft, nil, &redemption, now)
		require.ErrorIs(t, err, order.ErrOutcomeMismatch)

		plain, err := builder.NewOrderBuilder().BuildDTO().ToDomain()
		require.NoError(t, err)
		_, err = order.NewOrder(number, plain, &discount, nil, now)
		require.ErrorIs(t, err, order.ErrOutcomeMismatch)
	})

	t.Run("with number keeps everything else", func(t *testing.T) {
		o, err := order.NewOrder(number, draft, &discount, &redemption, now)
		require.NoError(t, err)

		renumbered := o.WithNumber("ORD-20261015-FFFFFFFF")
		assert.Equal(t, order.Number("ORD-20261015-FFFFFFFF"), renumbered.Number())
		assert.Equal(t, number, o.Number())
		assert.Equal(t, o.ID(), renumbered.ID())
		assert.True(t, o.Totals().Final.Equal(renumbered.Totals().Final))
	})
}

func TestGenerateNumber(t *testing.T) {
	n, err := order.GenerateNumber(now)
	require.NoError(t, err)
	assert.Regexp(t, `^ORD-20261015-[0-9A-F]{8}$`, n.String())
	assert.Equal(t, n.String(), order.CanonicalNumber(" "+strings.ToLower(n.String())+" "))
}

func TestNewStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "CANCELLED"} {
		_, err := order.NewStatus(s)
		assert.NoError(t, err, s)
	}
	_, err := order.NewStatus("shipped")
	require.ErrorIs(t, err, order.ErrInvalidStatus)
}

func TestLineTotal(t *testing.T) {
	li, err := order.NewLineItem("SKU", "Mug", dec("12.50"), 4, order.LineItemOptions{Color: "white"})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(li.LineTotal()))
	assert.Equal(t, "white", li.Options().Color)
}
