package giftcard

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGiftCardNotFound    = errors.New("gift card not found")
	ErrGiftCardZeroBalance = errors.New("gift card has no remaining balance")
	ErrGiftCardDisabled    = errors.New("gift card is disabled")
)

var rejectionReasons = []struct {
	err    error
	reason string
}{
	{ErrGiftCardNotFound, "not_found"},
	{ErrGiftCardZeroBalance, "zero_balance"},
	{ErrGiftCardDisabled, "disabled"},
}

type RedemptionOutcome struct {
	CardID           uuid.UUID
	Number           Number
	Amount           decimal.Decimal
	BalanceRead      decimal.Decimal
	RemainingBalance decimal.Decimal
}

// Evaluate computes how much of remainingPayable g can cover. Nothing is debited here.
func Evaluate(g *GiftCard, remainingPayable decimal.Decimal) (RedemptionOutcome, error) {
	switch {
	case g == nil:
		return RedemptionOutcome{}, ErrGiftCardNotFound
	case g.status == StatusDisabled:
		return RedemptionOutcome{}, ErrGiftCardDisabled
	case !g.balance.IsPositive():
		return RedemptionOutcome{}, ErrGiftCardZeroBalance
	}

	owed := decimal.Max(remainingPayable, decimal.Zero)
	amount := decimal.Min(g.balance, owed).Round(2)

	return RedemptionOutcome{
		CardID:           g.id,
		Number:           g.number,
		Amount:           amount,
		BalanceRead:      g.balance,
		RemainingBalance: g.balance.Sub(amount),
	}, nil
}

func RejectionReason(err error) string {
	for _, r := range rejectionReasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}

func IsRejection(err error) bool {
	return RejectionReason(err) != ""
}
