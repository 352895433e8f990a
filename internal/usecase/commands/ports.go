package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"time"

	"gin-order-admin/internal/pkg/errs"
)

// IdempotencyStore guards replays of client requests carrying an Idempotency-Key.
type IdempotencyStore interface {
	TryLock(ctx context.Context, scope, key string) (bool, error)
	Release(ctx context.Context, scope, key string) error
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}

type CheckoutMetrics interface {
	ObserveCheckout(outcome string, elapsed time.Duration)
	CommitConflict()
	CouponRejected(reason string)
	GiftCardRejected(reason string)
}

const (
	OutcomePlaced   = "placed"
	OutcomeReplayed = "replayed"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeError    = "error"
)

func validationError(err error) error {
	return errs.Mark(err, errs.ErrDomainValidation)
}
