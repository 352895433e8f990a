package repository

import (
	"context"

	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const insertGiftCardSQL = `
INSERT INTO gift_cards (id, number, initial_balance, balance, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

const updateGiftCardStatusSQL = `
UPDATE gift_cards SET status = $2, updated_at = $3
WHERE id = $1`

// Compare-and-set on balance; a concurrent redemption makes this a no-op.
const redeemGiftCardSQL = `
UPDATE gift_cards SET balance = balance - $3, updated_at = now()
WHERE id = $1
  AND balance = $2
  AND status = 'active'
  AND balance >= $3`

type GiftCardRepository struct{}

func NewGiftCardRepository() *GiftCardRepository {
	return &GiftCardRepository{}
}

// Create fails with infra.KindDuplicateKey when the number is taken.
func (r *GiftCardRepository) Create(ctx context.Context, tx db.DBTX, g *giftcard.GiftCard) error {
	_, err := tx.Exec(ctx, insertGiftCardSQL,
		g.ID(), g.Number().String(),
		pgconv.DecimalToNumeric(g.InitialBalance()), pgconv.DecimalToNumeric(g.Balance()),
		g.Status().String(), g.CreatedAt(), g.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create gift card", err)
	}
	return nil
}

func (r *GiftCardRepository) UpdateStatus(ctx context.Context, tx db.DBTX, g *giftcard.GiftCard) error {
	tag, err := tx.Exec(ctx, updateGiftCardStatusSQL, g.ID(), g.Status().String(), g.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update gift card status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("gift card not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *GiftCardRepository) Redeem(ctx context.Context, tx db.DBTX, id uuid.UUID, expectedBalance, amount decimal.Decimal) (bool, error) {
	tag, err := tx.Exec(ctx, redeemGiftCardSQL, id, pgconv.DecimalToNumeric(expectedBalance), pgconv.DecimalToNumeric(amount))
	if err != nil {
		return false, infra.WrapRepoErr("failed to redeem gift card", err)
	}
	return tag.RowsAffected() == 1, nil
}
