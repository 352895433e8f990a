package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/converter"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/infra/readstore"
	"gin-order-admin/internal/infra/repository"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool

	orders        *repository.OrderRepository
	coupons       *repository.CouponRepository
	giftCards     *repository.GiftCardRepository
	notifications *repository.NotificationRepository
	users         *repository.UserRepository
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{
		pool:          pool,
		orders:        repository.NewOrderRepository(),
		coupons:       repository.NewCouponRepository(),
		giftCards:     repository.NewGiftCardRepository(),
		notifications: repository.NewNotificationRepository(),
		users:         repository.NewUserRepository(),
	}
}

// ReadCommitted is enough: every balance and counter write is a compare-and-set.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 50 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX
	uow  *PostgresUoW

	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Orders() shared.OrderRepository {
	return t.uow.orders
}

func (t *pgTx) Coupons() shared.CouponRepository {
	return t.uow.coupons
}

func (t *pgTx) GiftCards() shared.GiftCardRepository {
	return t.uow.giftCards
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	return t.uow.notifications
}

func (t *pgTx) Users() shared.UserRepository {
	return t.uow.users
}

// Reads sees the transaction's own writes.
func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.dbtx)
	}
	return t.commandReads
}

type commandReads struct {
	couponStore   *readstore.CouponReadStore
	giftCardStore *readstore.GiftCardReadStore
}

func newCommandReads(dbtx db.DBTX) *commandReads {
	return &commandReads{
		couponStore:   readstore.NewCouponReadStore(dbtx),
		giftCardStore: readstore.NewGiftCardReadStore(dbtx),
	}
}

func (r *commandReads) CouponByCode(ctx context.Context, code string) (*coupon.Coupon, error) {
	view, err := r.couponStore.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	c, err := converter.CouponToDomain(view)
	if err != nil {
		return nil, infra.WrapRepoErr("stored coupon violates domain rules", err)
	}
	return c, nil
}

func (r *commandReads) GiftCardByNumber(ctx context.Context, number string) (*giftcard.GiftCard, error) {
	view, err := r.giftCardStore.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	g, err := converter.GiftCardToDomain(view)
	if err != nil {
		return nil, infra.WrapRepoErr("stored gift card violates domain rules", err)
	}
	return g, nil
}

func (r *commandReads) CouponReferenced(ctx context.Context, code string) (bool, error) {
	return r.couponStore.IsReferenced(ctx, code)
}
