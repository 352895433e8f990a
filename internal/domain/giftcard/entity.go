package giftcard

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidInitialBalance = errors.New("initial balance must be positive")

type GiftCard struct {
	id             uuid.UUID
	number         Number
	initialBalance decimal.Decimal
	balance        decimal.Decimal
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewGiftCard(number Number, initialBalance decimal.Decimal, now time.Time) (*GiftCard, error) {
	if !initialBalance.IsPositive() {
		return nil, ErrInvalidInitialBalance
	}
	balance := initialBalance.Round(2)
	return &GiftCard{
		id:             uuid.New(),
		number:         number,
		initialBalance: balance,
		balance:        balance,
		status:         StatusActive,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	number Number,
	initialBalance, balance decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *GiftCard {
	return &GiftCard{
		id:             id,
		number:         number,
		initialBalance: initialBalance,
		balance:        balance,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (g *GiftCard) ChangeStatus(status Status, now time.Time) {
	g.status = status
	g.updatedAt = now
}

func (g *GiftCard) ID() uuid.UUID                   { return g.id }
func (g *GiftCard) Number() Number                  { return g.number }
func (g *GiftCard) InitialBalance() decimal.Decimal { return g.initialBalance }
func (g *GiftCard) Balance() decimal.Decimal        { return g.balance }
func (g *GiftCard) Status() Status                  { return g.status }
func (g *GiftCard) CreatedAt() time.Time            { return g.createdAt }
func (g *GiftCard) UpdatedAt() time.Time            { return g.updatedAt }
