//go:build unit

package giftcard_test

import (
	"testing"
	"time"

	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEvaluate(t *testing.T) {
	t.Run("redemption is capped by balance and amount owed", func(t *testing.T) {
		cases := []struct {
			name      string
			balance   string
			payable   string
			amount    string
			remaining string
		}{
			{name: "balance smaller than owed", balance: "50", payable: "170", amount: "50", remaining: "0"},
			{name: "owed smaller than balance", balance: "50", payable: "20.25", amount: "20.25", remaining: "29.75"},
			{name: "exact match", balance: "80", payable: "80", amount: "80", remaining: "0"},
			{name: "nothing owed", balance: "50", payable: "0", amount: "0", remaining: "50"},
			{name: "negative owed treated as zero", balance: "50", payable: "-10", amount: "0", remaining: "50"},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b := builder.NewGiftCardBuilder().WithBalance(c.balance)
				card := b.MustBuildDomain()

				outcome, err := giftcard.Evaluate(card, dec(c.payable))
				require.NoError(t, err)

				expected := giftcard.RedemptionOutcome{
					CardID:           b.ID,
					Number:           giftcard.Number(b.Number),
					Amount:           dec(c.amount),
					BalanceRead:      dec(c.balance),
					RemainingBalance: dec(c.remaining),
				}
				if diff := cmp.Diff(expected, outcome, decimalEqual); diff != "" {
					t.Errorf("RedemptionOutcome mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("evaluation never debits the card", func(t *testing.T) {
		card := builder.NewGiftCardBuilder().MustBuildDomain()

		_, err := giftcard.Evaluate(card, dec("30"))
		require.NoError(t, err)
		assert.True(t, dec("50").Equal(card.Balance()))
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			card   *giftcard.GiftCard
			errIs  error
			reason string
		}{
			{name: "missing card", card: nil, errIs: giftcard.ErrGiftCardNotFound, reason: "not_found"},
			{
				name:   "zero balance",
				card:   builder.NewGiftCardBuilder().WithBalance("0").MustBuildDomain(),
				errIs:  giftcard.ErrGiftCardZeroBalance,
				reason: "zero_balance",
			},
			{
				name:   "disabled",
				card:   builder.NewGiftCardBuilder().AsDisabled().MustBuildDomain(),
				errIs:  giftcard.ErrGiftCardDisabled,
				reason: "disabled",
			},
			{
				name:   "disabled wins over zero balance",
				card:   builder.NewGiftCardBuilder().AsDisabled().WithBalance("0").MustBuildDomain(),
				errIs:  giftcard.ErrGiftCardDisabled,
				reason: "disabled",
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := giftcard.Evaluate(c.card, dec("100"))
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, giftcard.IsRejection(err))
				assert.Equal(t, c.reason, giftcard.RejectionReason(err))
			})
		}
	})
}

func TestNewGiftCard(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	number, err := giftcard.NewNumber(" gc-aaaa-bbbb-cccc ")
	require.NoError(t, err)
	assert.Equal(t, giftcard.Number("GC-AAAA-BBBB-CCCC"), number)

	card, err := giftcard.NewGiftCard(number, dec("25.555"), now)
	require.NoError(t, err)
	assert.True(t, dec("25.56").Equal(card.Balance()))
	assert.True(t, card.Balance().Equal(card.InitialBalance()))
	assert.Equal(t, giftcard.StatusActive, card.Status())

	_, err = giftcard.NewGiftCard(number, decimal.Zero, now)
	require.ErrorIs(t, err, giftcard.ErrInvalidInitialBalance)

	_, err = giftcard.NewNumber("short")
	require.ErrorIs(t, err, giftcard.ErrInvalidCardNumber)
}

func TestGenerateNumber(t *testing.T) {
	seen := map[giftcard.Number]bool{}
	for range 50 {
		n, err := giftcard.GenerateNumber()
		require.NoError(t, err)
		assert.Regexp(t, `^GC-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`, n.String())

		parsed, err := giftcard.NewNumber(n.String())
		require.NoError(t, err)
		assert.Equal(t, n, parsed)
		seen[n] = true
	}
	assert.Len(t, seen, 50)
}

func TestNewStatus(t *testing.T) {
	s, err := giftcard.NewStatus(" Disabled ")
	require.NoError(t, err)
	assert.Equal(t, giftcard.StatusDisabled, s)

	_, err = giftcard.NewStatus("frozen")
	require.ErrorIs(t, err, giftcard.ErrInvalidStatus)
}
