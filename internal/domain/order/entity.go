package order

import (
	"errors"
	"strings"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/domain/giftcard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart       = errors.New("cart must contain at least one item")
	ErrTooManyItems    = errors.New("cart cannot contain more than 100 line items")
	ErrOutcomeMismatch = errors.New("applied outcome does not match the draft")
)

const maxLineItems = 100

// Draft is a validated checkout request before coupon and gift card evaluation.
type Draft struct {
	items          []LineItem
	customer       Customer
	paymentMethod  PaymentMethod
	shippingFee    decimal.Decimal
	couponCode     *string
	giftCardNumber *string
	note           string
}

func NewDraft(
	items []LineItem,
	customer Customer,
	paymentMethod PaymentMethod,
	shippingFee decimal.Decimal,
	couponCode, giftCardNumber *string,
	note string,
) (*Draft, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if len(items) > maxLineItems {
		return nil, ErrTooManyItems
	}
	if shippingFee.IsNegative() {
		return nil, ErrNegativeShippingFee
	}

	d := &Draft{
		items:         append([]LineItem(nil), items...),
		customer:      customer,
		paymentMethod: paymentMethod,
		shippingFee:   shippingFee.Round(2),
		note:          strings.TrimSpace(note),
	}
	if couponCode != nil {
		if code := coupon.CanonicalCode(*couponCode); code != "" {
			d.couponCode = &code
		}
	}
	if giftCardNumber != nil {
		if n := giftcard.CanonicalNumber(*giftCardNumber); n != "" {
			d.giftCardNumber = &n
		}
	}
	return d, nil
}

func (d *Draft) Items() []LineItem            { return d.items }
func (d *Draft) Customer() Customer           { return d.customer }
func (d *Draft) PaymentMethod() PaymentMethod { return d.paymentMethod }
func (d *Draft) ShippingFee() decimal.Decimal { return d.shippingFee }
func (d *Draft) CouponCode() *string          { return d.couponCode }
func (d *Draft) GiftCardNumber() *string      { return d.giftCardNumber }
func (d *Draft) Note() string                 { return d.note }
func (d *Draft) Subtotal() decimal.Decimal    { return Subtotal(d.items) }
func (d *Draft) HasCoupon() bool              { return d.couponCode != nil }
func (d *Draft) HasGiftCard() bool            { return d.giftCardNumber != nil }

// Order is the immutable snapshot of a checkout. Only its status changes afterwards.
type Order struct {
	id             uuid.UUID
	number         Number
	items          []LineItem
	customer       Customer
	paymentMethod  PaymentMethod
	totals         Totals
	couponCode     *coupon.Code
	giftCardNumber *giftcard.Number
	status         Status
	note           string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewOrder reconciles the draft with the evaluated coupon and gift card outcomes.
func NewOrder(
	number Number,
	draft *Draft,
	discount *coupon.DiscountOutcome,
	redemption *giftcard.RedemptionOutcome,
	now time.Time,
) (*Order, error) {
	if (discount != nil) != draft.HasCoupon() || (redemption != nil) != draft.HasGiftCard() {
		return nil, ErrOutcomeMismatch
	}

	discountAmount := decimal.Zero
	giftCardAmount := decimal.Zero
	o := &Order{
		id:            uuid.New(),
		number:        number,
		items:         draft.items,
		customer:      draft.customer,
		paymentMethod: draft.paymentMethod,
		status:        StatusPending,
		note:          draft.note,
		createdAt:     now,
		updatedAt:     now,
	}
	if discount != nil {
		code := discount.Code
		o.couponCode = &code
		discountAmount = discount.Amount
	}
	if redemption != nil {
		n := redemption.Number
		o.giftCardNumber = &n
		giftCardAmount = redemption.Amount
	}

	totals, err := CalculateTotals(draft.Subtotal(), discountAmount, giftCardAmount, draft.shippingFee)
	if err != nil {
		return nil, err
	}
	o.totals = totals
	return o, nil
}

// WithNumber returns a copy carrying a fresh order number, used after a duplicate key.
func (o *Order) WithNumber(number Number) *Order {
	cp := *o
	cp.number = number
	return &cp
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) Number() Number                   { return o.number }
func (o *Order) Items() []LineItem                { return o.items }
func (o *Order) Customer() Customer               { return o.customer }
func (o *Order) PaymentMethod() PaymentMethod     { return o.paymentMethod }
func (o *Order) Totals() Totals                   { return o.totals }
func (o *Order) CouponCode() *coupon.Code         { return o.couponCode }
func (o *Order) GiftCardNumber() *giftcard.Number { return o.giftCardNumber }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) Note() string                     { return o.note }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) UpdatedAt() time.Time             { return o.updatedAt }
