package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type OrderView struct {
	ID              uuid.UUID        `json:"id"`
	OrderNumber     string           `json:"order_number"`
	Status          string           `json:"status"`
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone"`
	ShippingAddress string           `json:"shipping_address"`
	PaymentMethod   string           `json:"payment_method"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	DiscountAmount  decimal.Decimal  `json:"discount_amount"`
	GiftCardAmount  decimal.Decimal  `json:"gift_card_amount"`
	ShippingFee     decimal.Decimal  `json:"shipping_fee"`
	FinalAmount     decimal.Decimal  `json:"final_amount"`
	CouponCode      *string          `json:"coupon_code,omitempty"`
	GiftCardNumber  *string          `json:"gift_card_number,omitempty"`
	Note            string           `json:"note"`
	Items           []*OrderItemView `json:"items"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type OrderItemView struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"line_total"`
	Size       string          `json:"size"`
	Color      string          `json:"color"`
	ImageURL   string          `json:"image_url"`
	ProductURL string          `json:"product_url"`
}

type OrderListItem struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	Status        string          `json:"status"`
	CustomerName  string          `json:"customer_name"`
	CustomerEmail string          `json:"customer_email"`
	PaymentMethod string          `json:"payment_method"`
	ItemCount     int             `json:"item_count"`
	FinalAmount   decimal.Decimal `json:"final_amount"`
	CouponCode    *string         `json:"coupon_code,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

type CouponView struct {
	ID                uuid.UUID        `json:"id"`
	Code              string           `json:"code"`
	Description       string           `json:"description"`
	DiscountType      string           `json:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discount_value"`
	MaxDiscountAmount *decimal.Decimal `json:"max_discount_amount,omitempty"`
	MinOrderAmount    decimal.Decimal  `json:"min_order_amount"`
	UsageLimit        *int             `json:"usage_limit,omitempty"`
	UsedCount         int              `json:"used_count"`
	ValidFrom         *time.Time       `json:"valid_from,omitempty"`
	ValidUntil        *time.Time       `json:"valid_until,omitempty"`
	IsActive          bool             `json:"is_active"`
	Status            string           `json:"status"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// CouponPreview is the shopper-facing evaluation result; no usage is consumed.
type CouponPreview struct {
	Code           string          `json:"code"`
	Valid          bool            `json:"valid"`
	Reason         string          `json:"reason,omitempty"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type GiftCardView struct {
	ID             uuid.UUID       `json:"id"`
	Number         string          `json:"number"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type GiftCardBalance struct {
	Number  string          `json:"number"`
	Balance decimal.Decimal `json:"balance"`
	Status  string          `json:"status"`
}

type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
}

type OrderFilters struct {
	Status *string
	Search *string
	From   *time.Time
	Until  *time.Time
}

type CouponFilters struct {
	Search *string
	Active *bool
}

type GiftCardFilters struct {
	Status *string
}
