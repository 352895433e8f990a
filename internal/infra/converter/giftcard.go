package converter

import (
	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/usecase/queries"
)

func GiftCardToDomain(v *queries.GiftCardView) (*giftcard.GiftCard, error) {
	status, err := giftcard.NewStatus(v.Status)
	if err != nil {
		return nil, err
	}
	return giftcard.Reconstruct(
		v.ID,
		giftcard.Number(v.Number),
		v.InitialBalance,
		v.Balance,
		status,
		v.CreatedAt,
		v.UpdatedAt,
	), nil
}
