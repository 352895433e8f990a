package request

import (
	"time"

	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type IssueGiftCardRequest struct {
	// Number is generated when omitted.
	Number         *string         `json:"number,omitempty" binding:"omitempty,min=8,max=32"`
	InitialBalance decimal.Decimal `json:"initialBalance" swaggertype:"string" example:"50.00"`
}

func (r IssueGiftCardRequest) HasNumber() bool {
	return r.Number != nil && giftcard.CanonicalNumber(*r.Number) != ""
}

func (r IssueGiftCardRequest) ToDomain(now time.Time) (*giftcard.GiftCard, error) {
	var (
		number giftcard.Number
		err    error
	)
	if r.HasNumber() {
		number, err = giftcard.NewNumber(*r.Number)
	} else {
		number, err = giftcard.GenerateNumber()
	}
	if err != nil {
		return nil, err
	}
	return giftcard.NewGiftCard(number, r.InitialBalance, now)
}

type SetGiftCardStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active disabled"`
}

func (r SetGiftCardStatusRequest) ToDomain() (giftcard.Status, error) {
	return giftcard.NewStatus(r.Status)
}

type ListGiftCardsQuery struct {
	PageQuery
	Status string `form:"status" binding:"omitempty,oneof=active disabled"`
}

func (q ListGiftCardsQuery) ToFilters() queries.GiftCardFilters {
	var f queries.GiftCardFilters
	if q.Status != "" {
		s := q.Status
		f.Status = &s
	}
	return f
}
