package coupon

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidDiscountType    = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
	ErrInvalidMaxDiscount     = errors.New("max discount amount must be positive")
	ErrMaxDiscountOnFixed     = errors.New("max discount amount only applies to percentage coupons")
	ErrInvalidValidityWindow  = errors.New("valid_until must be after valid_from")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,32}$`)

var hundred = decimal.NewFromInt(100)

type Code string

// CanonicalCode is the stored and looked-up form of a code typed by a shopper or admin.
func CanonicalCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func NewCode(s string) (Code, error) {
	code := CanonicalCode(s)
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func NewDiscountType(s string) (DiscountType, error) {
	switch DiscountType(strings.ToLower(strings.TrimSpace(s))) {
	case DiscountPercentage:
		return DiscountPercentage, nil
	case DiscountFixed:
		return DiscountFixed, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (t DiscountType) String() string {
	return string(t)
}

type Discount struct {
	kind      DiscountType
	value     decimal.Decimal
	maxAmount *decimal.Decimal
}

func NewPercentageDiscount(percent decimal.Decimal, maxAmount *decimal.Decimal) (Discount, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Discount{}, ErrInvalidDiscountPercent
	}
	if maxAmount != nil && !maxAmount.IsPositive() {
		return Discount{}, ErrInvalidMaxDiscount
	}
	d := Discount{kind: DiscountPercentage, value: percent}
	if maxAmount != nil {
		capped := *maxAmount
		d.maxAmount = &capped
	}
	return d, nil
}

func NewFixedDiscount(amount decimal.Decimal) (Discount, error) {
	if amount.IsNegative() {
		return Discount{}, ErrInvalidDiscountAmount
	}
	return Discount{kind: DiscountFixed, value: amount}, nil
}

func NewDiscount(kind DiscountType, value decimal.Decimal, maxAmount *decimal.Decimal) (Discount, error) {
	switch kind {
	case DiscountPercentage:
		return NewPercentageDiscount(value, maxAmount)
	case DiscountFixed:
		if maxAmount != nil {
			return Discount{}, ErrMaxDiscountOnFixed
		}
		return NewFixedDiscount(value)
	default:
		return Discount{}, ErrInvalidDiscountType
	}
}

func (d Discount) Type() DiscountType     { return d.kind }
func (d Discount) Value() decimal.Decimal { return d.value }
func (d Discount) IsPercentage() bool     { return d.kind == DiscountPercentage }

func (d Discount) MaxAmount() *decimal.Decimal {
	if d.maxAmount == nil {
		return nil
	}
	v := *d.maxAmount
	return &v
}

// Amount is the discount granted on subtotal, capped by the max amount and
// by the subtotal itself, rounded half-up to cents.
func (d Discount) Amount(subtotal decimal.Decimal) decimal.Decimal {
	if !subtotal.IsPositive() {
		return decimal.Zero
	}

	var raw decimal.Decimal
	if d.kind == DiscountPercentage {
		raw = subtotal.Mul(d.value).Div(hundred)
	} else {
		raw = d.value
	}

	if d.maxAmount != nil && raw.GreaterThan(*d.maxAmount) {
		raw = *d.maxAmount
	}
	if raw.GreaterThan(subtotal) {
		raw = subtotal
	}
	return raw.Round(2)
}

// Window is the optional validity period. Both bounds are inclusive.
type Window struct {
	from  *time.Time
	until *time.Time
}

func NewWindow(from, until *time.Time) (Window, error) {
	if from != nil && until != nil && !until.After(*from) {
		return Window{}, ErrInvalidValidityWindow
	}
	w := Window{}
	if from != nil {
		f := *from
		w.from = &f
	}
	if until != nil {
		u := *until
		w.until = &u
	}
	return w, nil
}

func (w Window) From() *time.Time  { return w.from }
func (w Window) Until() *time.Time { return w.until }

func (w Window) NotStartedAt(now time.Time) bool {
	return w.from != nil && now.Before(*w.from)
}

func (w Window) ExpiredAt(now time.Time) bool {
	return w.until != nil && now.After(*w.until)
}
