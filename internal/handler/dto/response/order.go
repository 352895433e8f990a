package response

import (
	"time"

	"gin-order-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderResponse struct {
	ID              uuid.UUID            `json:"id"`
	OrderNumber     string               `json:"orderNumber"`
	Status          string               `json:"status"`
	CustomerName    string               `json:"customerName"`
	CustomerEmail   string               `json:"customerEmail"`
	CustomerPhone   string               `json:"customerPhone,omitempty"`
	ShippingAddress string               `json:"shippingAddress"`
	PaymentMethod   string               `json:"paymentMethod"`
	Subtotal        string               `json:"subtotal" example:"200.00"`
	DiscountAmount  string               `json:"discountAmount" example:"30.00"`
	GiftCardAmount  string               `json:"giftCardAmount" example:"50.00"`
	ShippingFee     string               `json:"shippingFee" example:"10.00"`
	FinalAmount     string               `json:"finalAmount" example:"130.00"`
	CouponCode      *string              `json:"couponCode,omitempty"`
	GiftCardNumber  *string              `json:"giftCardNumber,omitempty"`
	Note            string               `json:"note,omitempty"`
	Items           []*OrderItemResponse `json:"items"`
	CreatedAt       time.Time            `json:"createdAt"`
	UpdatedAt       time.Time            `json:"updatedAt"`
}

type OrderItemResponse struct {
	ProductID  string `json:"productId"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	LineTotal  string `json:"lineTotal"`
	Size       string `json:"size,omitempty"`
	Color      string `json:"color,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	ProductURL string `json:"productUrl,omitempty"`
}

type OrderListItemResponse struct {
	ID            uuid.UUID `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	PaymentMethod string    `json:"paymentMethod"`
	ItemCount     int       `json:"itemCount"`
	FinalAmount   string    `json:"finalAmount"`
	CouponCode    *string   `json:"couponCode,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

type OrderPageResponse struct {
	Items      []*OrderListItemResponse `json:"items"`
	NextCursor string                   `json:"nextCursor,omitempty"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res := &OrderResponse{}
	if err := mapInto(res, v); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []*OrderItemResponse{}
	}
	return res, nil
}

func FromOrderList(items []*queries.OrderListItem, next *queries.Cursor) (*OrderPageResponse, error) {
	res := &OrderPageResponse{Items: make([]*OrderListItemResponse, 0, len(items))}
	if err := mapInto(&res.Items, items); err != nil {
		return nil, err
	}
	res.NextCursor = nextCursor(next)
	return res, nil
}
