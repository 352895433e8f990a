package request

import (
	"time"

	"gin-order-admin/internal/domain/order"
	"gin-order-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type PlaceOrderRequest struct {
	Items          []OrderItemRequest `json:"items" binding:"required,min=1,max=100,dive"`
	Customer       CustomerRequest    `json:"customer" binding:"required"`
	PaymentMethod  string             `json:"paymentMethod" binding:"required,max=32"`
	ShippingFee    decimal.Decimal    `json:"shippingFee" swaggertype:"string" example:"10.00"`
	CouponCode     *string            `json:"couponCode,omitempty"`
	GiftCardNumber *string            `json:"giftCardNumber,omitempty"`
	Note           string             `json:"note" binding:"max=1000"`
}

type OrderItemRequest struct {
	ProductID  string          `json:"productId" binding:"required,max=64"`
	Name       string          `json:"name" binding:"required,max=200"`
	UnitPrice  decimal.Decimal `json:"unitPrice" swaggertype:"string" example:"100.00"`
	Quantity   int             `json:"quantity" binding:"required,min=1,max=999"`
	Size       string          `json:"size" binding:"max=50"`
	Color      string          `json:"color" binding:"max=50"`
	ImageURL   string          `json:"imageUrl" binding:"omitempty,url,max=2048"`
	ProductURL string          `json:"productUrl" binding:"omitempty,url,max=2048"`
}

type CustomerRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"max=32"`
	Address string `json:"address" binding:"required,max=500"`
}

func (r PlaceOrderRequest) ToDomain() (*order.Draft, error) {
	items := make([]order.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		li, err := order.NewLineItem(it.ProductID, it.Name, it.UnitPrice, it.Quantity, order.LineItemOptions{
			Size:       it.Size,
			Color:      it.Color,
			ImageURL:   it.ImageURL,
			ProductURL: it.ProductURL,
		})
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}

	customer, err := order.NewCustomer(r.Customer.Name, r.Customer.Email, r.Customer.Phone, r.Customer.Address)
	if err != nil {
		return nil, err
	}
	payment, err := order.NewPaymentMethod(r.PaymentMethod)
	if err != nil {
		return nil, err
	}

	return order.NewDraft(items, customer, payment, r.ShippingFee, r.CouponCode, r.GiftCardNumber, r.Note)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
}

func (r UpdateOrderStatusRequest) ToDomain() (order.Status, error) {
	return order.NewStatus(r.Status)
}

type ListOrdersQuery struct {
	PageQuery
	Status string    `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Q      string    `form:"q" binding:"max=100"`
	From   time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	Until  time.Time `form:"until" time_format:"2006-01-02" time_utc:"1"`
}

// ToFilters treats until as an inclusive calendar day.
func (q ListOrdersQuery) ToFilters() queries.OrderFilters {
	var f queries.OrderFilters
	if q.Status != "" {
		s := q.Status
		f.Status = &s
	}
	if q.Q != "" {
		s := q.Q
		f.Search = &s
	}
	if !q.From.IsZero() {
		from := q.From.UTC()
		f.From = &from
	}
	if !q.Until.IsZero() {
		until := q.Until.UTC().AddDate(0, 0, 1)
		f.Until = &until
	}
	return f
}
