package response

import (
	"time"

	"gin-order-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type GiftCardResponse struct {
	ID             uuid.UUID `json:"id"`
	Number         string    `json:"number"`
	InitialBalance string    `json:"initialBalance"`
	Balance        string    `json:"balance"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type GiftCardPageResponse struct {
	Items      []*GiftCardResponse `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

type GiftCardBalanceResponse struct {
	Number  string `json:"number"`
	Balance string `json:"balance"`
	Status  string `json:"status"`
}

func FromGiftCardView(v *queries.GiftCardView) (*GiftCardResponse, error) {
	res := &GiftCardResponse{}
	if err := mapInto(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromGiftCardList(items []*queries.GiftCardView, next *queries.Cursor) (*GiftCardPageResponse, error) {
	res := &GiftCardPageResponse{Items: make([]*GiftCardResponse, 0, len(items))}
	if err := mapInto(&res.Items, items); err != nil {
		return nil, err
	}
	res.NextCursor = nextCursor(next)
	return res, nil
}

func FromGiftCardBalance(b *queries.GiftCardBalance) *GiftCardBalanceResponse {
	return &GiftCardBalanceResponse{
		Number:  b.Number,
		Balance: Money(b.Balance),
		Status:  b.Status,
	}
}
