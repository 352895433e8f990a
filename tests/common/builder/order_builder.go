//go:build unit || e2e

package builder

import (
	"time"

	reqdto "gin-order-admin/internal/handler/dto/request"
	"gin-order-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderBuilder defaults to a 200.00 cart with 10.00 shipping and no coupon or gift card.
type OrderBuilder struct {
	Items          []reqdto.OrderItemRequest
	Customer       reqdto.CustomerRequest
	PaymentMethod  string
	ShippingFee    decimal.Decimal
	CouponCode     *string
	GiftCardNumber *string
	Note           string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Items: []reqdto.OrderItemRequest{
			{
				ProductID: "SKU-001",
				Name:      "Wool scarf",
				UnitPrice: decimal.RequireFromString("100.00"),
				Quantity:  2,
				Size:      "M",
				Color:     "navy",
			},
		},
		Customer: reqdto.CustomerRequest{
			Name:    "Hanako Yamada",
			Email:   "hanako@example.com",
			Phone:   "090-0000-0000",
			Address: "1-2-3 Shibuya, Tokyo",
		},
		PaymentMethod: "credit_card",
		ShippingFee:   decimal.RequireFromString("10.00"),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithCoupon(code string) *OrderBuilder {
	b.CouponCode = &code
	return b
}

func (b *OrderBuilder) WithGiftCard(number string) *OrderBuilder {
	b.GiftCardNumber = &number
	return b
}

func (b *OrderBuilder) WithShippingFee(fee string) *OrderBuilder {
	b.ShippingFee = decimal.RequireFromString(fee)
	return b
}

func (b *OrderBuilder) BuildDTO() reqdto.PlaceOrderRequest {
	items := make([]reqdto.OrderItemRequest, len(b.Items))
	copy(items, b.Items)
	return reqdto.PlaceOrderRequest{
		Items:          items,
		Customer:       b.Customer,
		PaymentMethod:  b.PaymentMethod,
		ShippingFee:    b.ShippingFee,
		CouponCode:     b.CouponCode,
		GiftCardNumber: b.GiftCardNumber,
		Note:           b.Note,
	}
}

// BuildView returns the stored form of the order with the given totals.
func (b *OrderBuilder) BuildView(number string, discount, giftCard string) *queries.OrderView {
	subtotal := decimal.Zero
	items := make([]*queries.OrderItemView, 0, len(b.Items))
	for _, it := range b.Items {
		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
		items = append(items, &queries.OrderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: line,
			Size:      it.Size,
			Color:     it.Color,
		})
	}
	d := decimal.RequireFromString(discount)
	g := decimal.RequireFromString(giftCard)
	placedAt := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	return &queries.OrderView{
		ID:              uuid.New(),
		OrderNumber:     number,
		Status:          "pending",
		CustomerName:    b.Customer.Name,
		CustomerEmail:   b.Customer.Email,
		CustomerPhone:   b.Customer.Phone,
		ShippingAddress: b.Customer.Address,
		PaymentMethod:   b.PaymentMethod,
		Subtotal:        subtotal,
		DiscountAmount:  d,
		GiftCardAmount:  g,
		ShippingFee:     b.ShippingFee,
		FinalAmount:     subtotal.Sub(d).Sub(g).Add(b.ShippingFee),
		CouponCode:      b.CouponCode,
		GiftCardNumber:  b.GiftCardNumber,
		Note:            b.Note,
		Items:           items,
		CreatedAt:       placedAt,
		UpdatedAt:       placedAt,
	}
}
