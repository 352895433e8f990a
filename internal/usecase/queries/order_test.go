//go:build unit

package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/usecase/queries"
	"gin-order-admin/tests/common/builder"
	queriesmock "gin-order-admin/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func listItems(n int) []*queries.OrderListItem {
	items := make([]*queries.OrderListItem, n)
	for i := range items {
		items[i] = &queries.OrderListItem{
			ID:          uuid.New(),
			OrderNumber: fmt.Sprintf("ORD-20261015-%08X", i),
			Status:      "pending",
			CreatedAt:   now.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestOrderQueriesList(t *testing.T) {
	t.Run("full page yields a cursor from the last kept row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		rows := listItems(4)
		store.EXPECT().List(gomock.Any(), queries.OrderFilters{}, nil, int32(4)).Return(rows, nil)

		page, next, err := queries.NewOrderQueries(store, 100).List(context.Background(), queries.OrderFilters{}, nil, 3)

		require.NoError(t, err)
		require.Len(t, page, 3)
		require.NotNil(t, next)

		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[2].ID, id)
		assert.True(t, rows[2].CreatedAt.Equal(createdAt))
	})

	t.Run("cursor is decoded into a keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		id := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(now, id)}
		store.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil()), int32(21)).
			DoAndReturn(func(_ context.Context, _ queries.OrderFilters, after *queries.Keyset, _ int32) ([]*queries.OrderListItem, error) {
				assert.Equal(t, id, after.ID)
				assert.True(t, now.Equal(after.CreatedAt))
				return listItems(1), nil
			})

		page, next, err := queries.NewOrderQueries(store, 100).List(context.Background(), queries.OrderFilters{}, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Nil(t, next)
	})

	t.Run("limit is clamped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().List(gomock.Any(), gomock.Any(), nil, int32(queries.MaxListLimit+1)).Return(nil, nil)

		_, _, err := queries.NewOrderQueries(store, 100).List(context.Background(), queries.OrderFilters{}, nil, 5000)

		require.NoError(t, err)
	})

	t.Run("garbage cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)

		_, _, err := queries.NewOrderQueries(store, 100).List(context.Background(), queries.OrderFilters{}, &queries.Cursor{After: "%%%"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})

	t.Run("inverted date range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		from, until := now, now.Add(-time.Hour)

		_, _, err := queries.NewOrderQueries(store, 100).List(context.Background(), queries.OrderFilters{From: &from, Until: &until}, nil, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidDateFilter)
	})
}

func TestOrderQueriesGetByNumber(t *testing.T) {
	t.Run("number is canonicalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		view := builder.NewOrderBuilder().BuildView("ORD-20261015-ABCDEF12", "0", "0")
		store.EXPECT().FindByNumber(gomock.Any(), "ORD-20261015-ABCDEF12").Return(view, nil)

		got, err := queries.NewOrderQueries(store, 100).GetByNumber(context.Background(), "ord-20261015-abcdef12")

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().FindByNumber(gomock.Any(), gomock.Any()).Return(nil, infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := queries.NewOrderQueries(store, 100).GetByNumber(context.Background(), "ORD-20261015-00000000")

		assert.ErrorIs(t, err, queries.ErrOrderNotFound)
	})
}

func TestOrderQueriesExport(t *testing.T) {
	view := func() *queries.OrderView {
		return builder.NewOrderBuilder().BuildView("ORD-20261015-ABCDEF12", "0", "0")
	}

	t.Run("within the cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().ListForExport(gomock.Any(), gomock.Any(), int32(3)).Return([]*queries.OrderView{view(), view()}, nil)

		rows, err := queries.NewOrderQueries(store, 2).Export(context.Background(), queries.OrderFilters{})

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("over the cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockOrderReadStore(ctrl)
		store.EXPECT().ListForExport(gomock.Any(), gomock.Any(), int32(3)).Return([]*queries.OrderView{view(), view(), view()}, nil)

		_, err := queries.NewOrderQueries(store, 2).Export(context.Background(), queries.OrderFilters{})

		assert.ErrorIs(t, err, queries.ErrExportTooLarge)
	})
}
