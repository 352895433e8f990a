//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain text behind every fixture user's hash.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, strings.SplitN(email, "@", 2)[0], testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, email string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

type CouponFixture struct {
	Code              string
	DiscountType      string
	DiscountValue     string
	MaxDiscountAmount *string
	MinOrderAmount    string
	UsageLimit        *int
	UsedCount         int
	ValidFrom         *time.Time
	ValidUntil        *time.Time
	IsActive          bool
}

// PercentCoupon is an always-valid active percentage coupon without a cap.
func PercentCoupon(code string, percent string) CouponFixture {
	return CouponFixture{
		Code:           code,
		DiscountType:   "percentage",
		DiscountValue:  percent,
		MinOrderAmount: "0",
		IsActive:       true,
	}
}

func CreateTestCoupon(t *testing.T, db DBLike, f CouponFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	var maxDiscount *decimal.Decimal
	if f.MaxDiscountAmount != nil {
		d := decimal.RequireFromString(*f.MaxDiscountAmount)
		maxDiscount = &d
	}
	_, err := db.Exec(context.Background(),
		`INSERT INTO coupons (id, code, discount_type, discount_value, max_discount_amount, min_order_amount,
		                      usage_limit, used_count, valid_from, valid_until, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		id, f.Code, f.DiscountType, decimal.RequireFromString(f.DiscountValue), maxDiscount,
		decimal.RequireFromString(f.MinOrderAmount), f.UsageLimit, f.UsedCount, f.ValidFrom, f.ValidUntil, f.IsActive)
	require.NoError(t, err)
	return id
}

func CreateTestGiftCard(t *testing.T, db DBLike, number, balance string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	amount := decimal.RequireFromString(balance)
	_, err := db.Exec(context.Background(),
		`INSERT INTO gift_cards (id, number, initial_balance, balance, status) VALUES ($1, $2, $3, $3, 'active')`,
		id, number, amount)
	require.NoError(t, err)
	return id
}

func CouponUsedCount(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var used int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT used_count FROM coupons WHERE code = $1", code).Scan(&used))
	return used
}

func GiftCardBalance(t *testing.T, db DBLike, number string) decimal.Decimal {
	t.Helper()

	var balance decimal.Decimal
	require.NoError(t, db.QueryRow(context.Background(), "SELECT balance FROM gift_cards WHERE number = $1", number).Scan(&balance))
	return balance
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
