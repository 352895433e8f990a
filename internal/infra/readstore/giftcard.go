package readstore

import (
	"context"

	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/pkg/pgconv"
	"gin-order-admin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const giftCardColumns = `id, number, initial_balance, balance, status, created_at, updated_at`

const getGiftCardByNumberSQL = `SELECT ` + giftCardColumns + ` FROM gift_cards WHERE number = $1`

const listGiftCardsSQL = `SELECT ` + giftCardColumns + `
FROM gift_cards
WHERE ($1::text IS NULL OR status = $1)
  AND ($2::timestamptz IS NULL OR (created_at, id) < ($2, $3::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $4`

type GiftCardReadStore struct {
	db db.DBTX
}

func NewGiftCardReadStore(db db.DBTX) *GiftCardReadStore {
	return &GiftCardReadStore{db: db}
}

func (r *GiftCardReadStore) FindByNumber(ctx context.Context, number string) (*queries.GiftCardView, error) {
	view, err := scanGiftCardView(r.db.QueryRow(ctx, getGiftCardByNumberSQL, number))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("gift card not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find gift card by number", err)
	}
	return view, nil
}

func (r *GiftCardReadStore) List(ctx context.Context, filters queries.GiftCardFilters, after *queries.Keyset, limit int32) ([]*queries.GiftCardView, error) {
	afterAt, afterID := keysetArgs(after)
	rows, err := r.db.Query(ctx, listGiftCardsSQL, pgconv.StringPtrToPgtype(filters.Status), afterAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list gift cards", err)
	}
	defer rows.Close()

	var views []*queries.GiftCardView
	for rows.Next() {
		view, err := scanGiftCardView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan gift card row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate gift cards", err)
	}
	return views, nil
}

func scanGiftCardView(row rowScanner) (*queries.GiftCardView, error) {
	var (
		v                queries.GiftCardView
		initial, balance pgtype.Numeric
	)
	err := row.Scan(&v.ID, &v.Number, &initial, &balance, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if v.InitialBalance, err = pgconv.DecimalFromNumeric(initial); err != nil {
		return nil, err
	}
	if v.Balance, err = pgconv.DecimalFromNumeric(balance); err != nil {
		return nil, err
	}
	return &v, nil
}
