//go:build unit || e2e

package builder

import (
	"time"

	"gin-order-admin/internal/domain/giftcard"
	reqdto "gin-order-admin/internal/handler/dto/request"
	"gin-order-admin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type GiftCardBuilder struct {
	ID             uuid.UUID
	Number         string
	InitialBalance decimal.Decimal
	Balance        decimal.Decimal
	Status         string
	CreatedAt      time.Time
}

func NewGiftCardBuilder() *GiftCardBuilder {
	return &GiftCardBuilder{
		ID:             uuid.New(),
		Number:         "GC-1A2B-3C4D-5E6F",
		InitialBalance: decimal.NewFromInt(50),
		Balance:        decimal.NewFromInt(50),
		Status:         "active",
		CreatedAt:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *GiftCardBuilder) With(mutate func(*GiftCardBuilder)) *GiftCardBuilder {
	mutate(b)
	return b
}

func (b *GiftCardBuilder) WithBalance(balance string) *GiftCardBuilder {
	b.Balance = decimal.RequireFromString(balance)
	return b
}

func (b *GiftCardBuilder) AsDisabled() *GiftCardBuilder {
	b.Status = "disabled"
	return b
}

func (b *GiftCardBuilder) BuildDomain() (*giftcard.GiftCard, error) {
	number, err := giftcard.NewNumber(b.Number)
	if err != nil {
		return nil, err
	}
	status, err := giftcard.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}
	return giftcard.Reconstruct(b.ID, number, b.InitialBalance, b.Balance, status, b.CreatedAt, b.CreatedAt), nil
}

func (b *GiftCardBuilder) MustBuildDomain() *giftcard.GiftCard {
	g, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return g
}

func (b *GiftCardBuilder) BuildView() *queries.GiftCardView {
	return &queries.GiftCardView{
		ID:             b.ID,
		Number:         giftcard.CanonicalNumber(b.Number),
		InitialBalance: b.InitialBalance,
		Balance:        b.Balance,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.CreatedAt,
	}
}

func (b *GiftCardBuilder) BuildIssueDTO() reqdto.IssueGiftCardRequest {
	number := b.Number
	return reqdto.IssueGiftCardRequest{
		Number:         &number,
		InitialBalance: b.InitialBalance,
	}
}
