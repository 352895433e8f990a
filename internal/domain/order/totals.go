package order

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeSubtotal    = errors.New("subtotal cannot be negative")
	ErrNegativeShippingFee = errors.New("shipping fee cannot be negative")
)

// Totals holds the amounts actually applied to an order.
type Totals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	GiftCard decimal.Decimal
	Shipping decimal.Decimal
	Final    decimal.Decimal
}

// ComputeFinal returns max(0, subtotal - discount - giftCard) + shipping rounded half-up to cents.
// The discount is clamped to the subtotal first and the gift card to what is still owed after it.
func ComputeFinal(subtotal, discount, giftCardAmount, shippingFee decimal.Decimal) decimal.Decimal {
	return reconcile(subtotal, discount, giftCardAmount, shippingFee).Final
}

func CalculateTotals(subtotal, discount, giftCardAmount, shippingFee decimal.Decimal) (Totals, error) {
	if subtotal.IsNegative() {
		return Totals{}, ErrNegativeSubtotal
	}
	if shippingFee.IsNegative() {
		return Totals{}, ErrNegativeShippingFee
	}
	return reconcile(subtotal, discount, giftCardAmount, shippingFee), nil
}

func reconcile(subtotal, discount, giftCardAmount, shippingFee decimal.Decimal) Totals {
	base := decimal.Max(subtotal, decimal.Zero)
	appliedDiscount := clamp(discount, base)
	appliedGiftCard := clamp(giftCardAmount, base.Sub(appliedDiscount))
	payable := decimal.Max(base.Sub(appliedDiscount).Sub(appliedGiftCard), decimal.Zero)

	return Totals{
		Subtotal: subtotal.Round(2),
		Discount: appliedDiscount.Round(2),
		GiftCard: appliedGiftCard.Round(2),
		Shipping: shippingFee.Round(2),
		Final:    payable.Add(shippingFee).Round(2),
	}
}

func clamp(v, upper decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, decimal.Zero), upper)
}

// Subtotal is the sum of price x quantity over items.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum.Round(2)
}
