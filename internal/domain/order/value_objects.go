package order

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus        = errors.New("order status must be pending, confirmed, completed or cancelled")
	ErrMissingProductID     = errors.New("line item product id is required")
	ErrMissingItemName      = errors.New("line item name is required")
	ErrNegativeUnitPrice    = errors.New("line item unit price cannot be negative")
	ErrUnitPricePrecision   = errors.New("line item unit price must have at most 2 decimal places")
	ErrInvalidQuantity      = errors.New("line item quantity must be between 1 and 999")
	ErrMissingCustomerName  = errors.New("customer name is required")
	ErrInvalidCustomerEmail = errors.New("invalid customer email")
	ErrMissingAddress       = errors.New("shipping address is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

const maxQuantity = 999

var (
	customerEmailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	paymentMethodRegex = regexp.MustCompile(`^[a-z][a-z_]{1,31}$`)
)

// Status has no enforced transition graph; back-office staff may set any value.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func NewStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

type LineItemOptions struct {
	Size       string
	Color      string
	ImageURL   string
	ProductURL string
}

type LineItem struct {
	productID string
	name      string
	unitPrice decimal.Decimal
	quantity  int
	options   LineItemOptions
}

func NewLineItem(productID, name string, unitPrice decimal.Decimal, quantity int, opts LineItemOptions) (LineItem, error) {
	productID = strings.TrimSpace(productID)
	name = strings.TrimSpace(name)
	switch {
	case productID == "":
		return LineItem{}, ErrMissingProductID
	case name == "":
		return LineItem{}, ErrMissingItemName
	case unitPrice.IsNegative():
		return LineItem{}, ErrNegativeUnitPrice
	case !unitPrice.Equal(unitPrice.Round(2)):
		return LineItem{}, ErrUnitPricePrecision
	case quantity < 1 || quantity > maxQuantity:
		return LineItem{}, ErrInvalidQuantity
	}
	return LineItem{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		options:   opts,
	}, nil
}

func (l LineItem) ProductID() string          { return l.productID }
func (l LineItem) Name() string               { return l.name }
func (l LineItem) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l LineItem) Quantity() int              { return l.quantity }
func (l LineItem) Options() LineItemOptions   { return l.options }

func (l LineItem) LineTotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

type Customer struct {
	name    string
	email   string
	phone   string
	address string
}

func NewCustomer(name, email, phone, address string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	address = strings.TrimSpace(address)
	if name == "" {
		return Customer{}, ErrMissingCustomerName
	}
	if !customerEmailRegex.MatchString(email) {
		return Customer{}, ErrInvalidCustomerEmail
	}
	if address == "" {
		return Customer{}, ErrMissingAddress
	}
	return Customer{
		name:    name,
		email:   email,
		phone:   strings.TrimSpace(phone),
		address: address,
	}, nil
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Email() string   { return c.email }
func (c Customer) Phone() string   { return c.phone }
func (c Customer) Address() string { return c.address }

type PaymentMethod string

func NewPaymentMethod(s string) (PaymentMethod, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !paymentMethodRegex.MatchString(s) {
		return "", ErrInvalidPaymentMethod
	}
	return PaymentMethod(s), nil
}

func (p PaymentMethod) String() string {
	return string(p)
}
