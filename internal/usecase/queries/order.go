package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"time"

	"gin-order-admin/internal/domain/order"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errs.New("order not found")
	ErrExportTooLarge    = errs.New("too many orders to export; narrow the filters")
	ErrInvalidDateFilter = errs.New("from must be before until")
)

type OrderReadStore interface {
	FindByNumber(ctx context.Context, number string) (*OrderView, error)
	List(ctx context.Context, filters OrderFilters, after *Keyset, limit int32) ([]*OrderListItem, error)
	ListForExport(ctx context.Context, filters OrderFilters, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	GetByNumber(ctx context.Context, number string) (*OrderView, error)
	List(ctx context.Context, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
	Export(ctx context.Context, filters OrderFilters) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	readStore     OrderReadStore
	exportMaxRows int
}

func NewOrderQueries(readStore OrderReadStore, exportMaxRows int) OrderQueries {
	return &orderQueriesImpl{readStore: readStore, exportMaxRows: exportMaxRows}
}

func (q *orderQueriesImpl) GetByNumber(ctx context.Context, number string) (*OrderView, error) {
	view, err := q.readStore.FindByNumber(ctx, order.CanonicalNumber(number))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	if err := validateDateRange(filters); err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)
	after, err := keysetFrom(cursor)
	if err != nil {
		return nil, nil, err
	}

	rows, err := q.readStore.List(ctx, filters, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}
	page, next := trimPage(rows, limit, func(o *OrderListItem) (time.Time, uuid.UUID) {
		return o.CreatedAt, o.ID
	})
	return page, next, nil
}

func (q *orderQueriesImpl) Export(ctx context.Context, filters OrderFilters) ([]*OrderView, error) {
	if err := validateDateRange(filters); err != nil {
		return nil, err
	}
	rows, err := q.readStore.ListForExport(ctx, filters, int32(q.exportMaxRows+1))
	if err != nil {
		return nil, err
	}
	if len(rows) > q.exportMaxRows {
		return nil, ErrExportTooLarge
	}
	return rows, nil
}

func validateDateRange(filters OrderFilters) error {
	if filters.From != nil && filters.Until != nil && !filters.From.Before(*filters.Until) {
		return ErrInvalidDateFilter
	}
	return nil
}
