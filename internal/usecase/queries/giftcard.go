package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGiftCardNotFound = errs.New("gift card not found")

type GiftCardReadStore interface {
	FindByNumber(ctx context.Context, number string) (*GiftCardView, error)
	List(ctx context.Context, filters GiftCardFilters, after *Keyset, limit int32) ([]*GiftCardView, error)
}

type GiftCardQueries interface {
	GetByNumber(ctx context.Context, number string) (*GiftCardView, error)
	List(ctx context.Context, filters GiftCardFilters, cursor *Cursor, limit int) ([]*GiftCardView, *Cursor, error)
	Balance(ctx context.Context, number string) (*GiftCardBalance, error)
}

type giftCardQueriesImpl struct {
	readStore GiftCardReadStore
}

func NewGiftCardQueries(readStore GiftCardReadStore) GiftCardQueries {
	return &giftCardQueriesImpl{readStore: readStore}
}

func (q *giftCardQueriesImpl) GetByNumber(ctx context.Context, number string) (*GiftCardView, error) {
	view, err := q.readStore.FindByNumber(ctx, giftcard.CanonicalNumber(number))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrGiftCardNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *giftCardQueriesImpl) List(ctx context.Context, filters GiftCardFilters, cursor *Cursor, limit int) ([]*GiftCardView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.readStore.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, func(g *GiftCardView) (time.Time, uuid.UUID) {
		return g.CreatedAt, g.ID
	})
	return page, next, nil
}

func (q *giftCardQueriesImpl) Balance(ctx context.Context, number string) (*GiftCardBalance, error) {
	view, err := q.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return &GiftCardBalance{
		Number:  view.Number,
		Balance: view.Balance,
		Status:  view.Status,
	}, nil
}
