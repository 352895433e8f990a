package response

import (
	"time"

	"gin-order-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponResponse struct {
	ID                uuid.UUID  `json:"id"`
	Code              string     `json:"code"`
	Description       string     `json:"description"`
	DiscountType      string     `json:"discountType"`
	DiscountValue     string     `json:"discountValue"`
	MaxDiscountAmount *string    `json:"maxDiscountAmount,omitempty"`
	MinOrderAmount    string     `json:"minOrderAmount"`
	UsageLimit        *int       `json:"usageLimit,omitempty"`
	UsedCount         int        `json:"usedCount"`
	ValidFrom         *time.Time `json:"validFrom,omitempty"`
	ValidUntil        *time.Time `json:"validUntil,omitempty"`
	IsActive          bool       `json:"isActive"`
	Status            string     `json:"status" example:"active"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type CouponPageResponse struct {
	Items      []*CouponResponse `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

type CouponPreviewResponse struct {
	Code           string `json:"code"`
	Valid          bool   `json:"valid"`
	Reason         string `json:"reason,omitempty" example:"below_minimum"`
	DiscountAmount string `json:"discountAmount"`
	Subtotal       string `json:"subtotal"`
}

func FromCouponView(v *queries.CouponView) (*CouponResponse, error) {
	res := &CouponResponse{}
	if err := mapInto(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCouponList(items []*queries.CouponView, next *queries.Cursor) (*CouponPageResponse, error) {
	res := &CouponPageResponse{Items: make([]*CouponResponse, 0, len(items))}
	if err := mapInto(&res.Items, items); err != nil {
		return nil, err
	}
	res.NextCursor = nextCursor(next)
	return res, nil
}

func FromCouponPreview(p *queries.CouponPreview) *CouponPreviewResponse {
	return &CouponPreviewResponse{
		Code:           p.Code,
		Valid:          p.Valid,
		Reason:         p.Reason,
		DiscountAmount: Money(p.DiscountAmount),
		Subtotal:       Money(p.Subtotal),
	}
}
