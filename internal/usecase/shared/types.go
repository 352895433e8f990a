package shared

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	JobKindOrderCreated = "order_created"
	TopicOrders         = "orders"
)

// OrderCreatedPayload is the outbox body written in the checkout transaction.
type OrderCreatedPayload struct {
	OrderID        uuid.UUID       `json:"order_id"`
	OrderNumber    string          `json:"order_number"`
	CustomerEmail  string          `json:"customer_email"`
	FinalAmount    decimal.Decimal `json:"final_amount"`
	CouponCode     *string         `json:"coupon_code,omitempty"`
	GiftCardNumber *string         `json:"gift_card_number,omitempty"`
	PlacedAt       time.Time       `json:"placed_at"`
}

const JobKindOrderStatusChanged = "order_status_changed"

type OrderStatusChangedPayload struct {
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	ChangedAt   time.Time `json:"changed_at"`
}
