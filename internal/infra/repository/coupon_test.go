//go:build unit

package repository

import (
	"context"
	"testing"

	"gin-order-admin/internal/infra"
	"gin-order-admin/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCouponIncrementUsage(t *testing.T) {
	couponID := uuid.New()

	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		mockError error
		wantWon   bool
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "increment applied", tag: tag("UPDATE 1"), wantWon: true},
		{name: "stale count or limit reached", tag: tag("UPDATE 0"), wantWon: false},
		{name: "database error", tag: tag(""), mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, incrementCouponUsageSQL, []any{couponID, 4}).Return(tt.tag, tt.mockError)

			won, err := NewCouponRepository().IncrementUsage(context.Background(), db, couponID, 4)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantWon, won)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestCouponUpdate(t *testing.T) {
	c := builder.NewCouponBuilder().WithUsage(10, 4).MustBuildDomain()

	t.Run("success", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, updateCouponSQL, mock.Anything).Return(tag("UPDATE 1"), nil)

		assert.NoError(t, NewCouponRepository().Update(context.Background(), db, c))
		db.AssertExpectations(t)
	})

	t.Run("limit dropped below the live count", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, updateCouponSQL, mock.Anything).Return(tag("UPDATE 0"), nil)

		err := NewCouponRepository().Update(context.Background(), db, c)
		assert.True(t, infra.IsKind(err, infra.KindConflict))
	})

	t.Run("check constraint", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("Exec", mock.Anything, updateCouponSQL, mock.Anything).
			Return(tag(""), &pgconn.PgError{Code: "23514", ConstraintName: "coupons_window_order"})

		err := NewCouponRepository().Update(context.Background(), db, c)
		assert.True(t, infra.IsKind(err, infra.KindCheckViolated))
	})
}

func TestCouponCreateDuplicate(t *testing.T) {
	db := new(MockDBTX)
	db.On("Exec", mock.Anything, insertCouponSQL, mock.Anything).
		Return(tag(""), &pgconn.PgError{Code: "23505", ConstraintName: "coupons_code_key"})

	err := NewCouponRepository().Create(context.Background(), db, builder.NewCouponBuilder().MustBuildDomain())

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
}

func TestCouponDelete(t *testing.T) {
	couponID := uuid.New()

	tests := []struct {
		name      string
		tag       pgconn.CommandTag
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "deleted", tag: tag("DELETE 1")},
		{name: "missing", tag: tag("DELETE 0"), wantKind: infra.KindNotFound},
		{name: "referenced by an order", tag: tag(""), mockError: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := new(MockDBTX)
			db.On("Exec", mock.Anything, deleteCouponSQL, []any{couponID}).Return(tt.tag, tt.mockError)

			err := NewCouponRepository().Delete(context.Background(), db, couponID)

			if tt.wantKind == "" {
				assert.NoError(t, err)
			} else {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			}
			db.AssertExpectations(t)
		})
	}
}
