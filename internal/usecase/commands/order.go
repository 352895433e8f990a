package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gin-order-admin/internal/domain/coupon"
	"gin-order-admin/internal/domain/giftcard"
	"gin-order-admin/internal/domain/order"
	reqdto "gin-order-admin/internal/handler/dto/request"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/config"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var (
	// ErrCommitConflict means a coupon counter or gift card balance moved between evaluation and commit.
	ErrCommitConflict         = errs.New("coupon or gift card changed during commit")
	ErrCheckoutConflict       = errs.New("checkout conflicted with concurrent orders, please try again")
	ErrIdempotencyUnavailable = errs.New("idempotency store unavailable")
	ErrOrderNotFound          = errs.New("order not found")
)

const checkoutScope = "checkout"

type PlaceOrderResult struct {
	OrderNumber string
	IsReplayed  bool
}

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, idempotencyKey string) (*PlaceOrderResult, error)
	UpdateStatus(ctx context.Context, orderNumber string, req reqdto.UpdateOrderStatusRequest) error
}

type orderCommandsImpl struct {
	uow         shared.UnitOfWork
	idempotency IdempotencyStore
	metrics     CheckoutMetrics
	clock       clock.Clock
	maxAttempts int
}

func NewOrderCommands(
	uow shared.UnitOfWork,
	idempotency IdempotencyStore,
	metrics CheckoutMetrics,
	clk clock.Clock,
	cfg config.Config,
) OrderCommands {
	maxAttempts := cfg.Checkout.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &orderCommandsImpl{
		uow:         uow,
		idempotency: idempotency,
		metrics:     metrics,
		clock:       clk,
		maxAttempts: maxAttempts,
	}
}

type idempotencyRecord struct {
	OrderNumber string `json:"orderNumber"`
	RequestHash string `json:"requestHash"`
}

type pendingOrder struct {
	order      *order.Order
	discount   *coupon.DiscountOutcome
	redemption *giftcard.RedemptionOutcome
}

func (o *orderCommandsImpl) PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest, idempotencyKey string) (result *PlaceOrderResult, err error) {
	start := time.Now()
	defer func() {
		o.metrics.ObserveCheckout(checkoutOutcome(result, err), time.Since(start))
	}()

	draft, err := req.ToDomain()
	if err != nil {
		return nil, validationError(err)
	}

	if idempotencyKey == "" {
		placed, err := o.checkout(ctx, draft)
		if err != nil {
			return nil, err
		}
		return &PlaceOrderResult{OrderNumber: placed.Number().String()}, nil
	}

	requestHash, err := fingerprint(req)
	if err != nil {
		return nil, errs.Wrap(err, "failed to fingerprint checkout request")
	}
	if replay, err := o.recall(ctx, idempotencyKey, requestHash); err != nil || replay != nil {
		return replay, err
	}

	locked, err := o.idempotency.TryLock(ctx, checkoutScope, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyUnavailable)
	}
	if !locked {
		// The holder may have finished between Recall and TryLock.
		if replay, err := o.recall(ctx, idempotencyKey, requestHash); err != nil || replay != nil {
			return replay, err
		}
		return nil, errs.ErrIdempotencyInProgress
	}

	placed, err := o.checkout(ctx, draft)
	if err != nil {
		o.release(idempotencyKey)
		return nil, err
	}

	record, _ := json.Marshal(idempotencyRecord{OrderNumber: placed.Number().String(), RequestHash: requestHash})
	if err := o.idempotency.Remember(ctx, checkoutScope, idempotencyKey, string(record)); err != nil {
		slog.Warn("failed to remember checkout result",
			"idempotency_key", idempotencyKey,
			"order_number", placed.Number().String(),
			"error", err.Error())
		o.release(idempotencyKey)
	}
	return &PlaceOrderResult{OrderNumber: placed.Number().String()}, nil
}

func (o *orderCommandsImpl) recall(ctx context.Context, key, requestHash string) (*PlaceOrderResult, error) {
	raw, found, err := o.idempotency.Recall(ctx, checkoutScope, key)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyUnavailable)
	}
	if !found {
		return nil, nil
	}

	var rec idempotencyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errs.Wrap(err, "corrupt idempotency record")
	}
	if rec.RequestHash != requestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}
	return &PlaceOrderResult{OrderNumber: rec.OrderNumber, IsReplayed: true}, nil
}

// release runs detached from the request context so a cancelled client still frees the key.
func (o *orderCommandsImpl) release(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := o.idempotency.Release(ctx, checkoutScope, key); err != nil {
		slog.Warn("failed to release idempotency lock", "idempotency_key", key, "error", err.Error())
	}
}

// checkout evaluates outside the transaction and commits with compare-and-set
// writes, re-evaluating from fresh reads when a concurrent checkout wins.
func (o *orderCommandsImpl) checkout(ctx context.Context, draft *order.Draft) (*order.Order, error) {
	for attempt := 1; ; attempt++ {
		pending, err := o.prepare(ctx, draft)
		if err != nil {
			return nil, err
		}

		err = o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return o.commit(ctx, tx, pending)
		})
		if err == nil {
			return pending.order, nil
		}
		if !errors.Is(err, ErrCommitConflict) {
			return nil, err
		}

		o.metrics.CommitConflict()
		if attempt >= o.maxAttempts {
			slog.Warn("checkout gave up after commit conflicts", "attempts", attempt)
			return nil, errs.Mark(err, ErrCheckoutConflict)
		}
		slog.Warn("checkout commit conflict, re-evaluating", "attempt", attempt)
	}
}

func (o *orderCommandsImpl) prepare(ctx context.Context, draft *order.Draft) (*pendingOrder, error) {
	now := o.clock.Now()
	reads := o.uow.CommandReads()
	subtotal := draft.Subtotal()
	pending := &pendingOrder{}

	if code := draft.CouponCode(); code != nil {
		c, err := reads.CouponByCode(ctx, *code)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		outcome, err := coupon.Evaluate(c, subtotal, now)
		if err != nil {
			if coupon.IsRejection(err) {
				o.metrics.CouponRejected(coupon.RejectionReason(err))
			}
			return nil, err
		}
		pending.discount = &outcome
	}

	if number := draft.GiftCardNumber(); number != nil {
		g, err := reads.GiftCardByNumber(ctx, *number)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		remaining := subtotal
		if pending.discount != nil {
			remaining = subtotal.Sub(pending.discount.Amount)
		}
		outcome, err := giftcard.Evaluate(g, decimal.Max(remaining, decimal.Zero))
		if err != nil {
			if giftcard.IsRejection(err) {
				o.metrics.GiftCardRejected(giftcard.RejectionReason(err))
			}
			return nil, err
		}
		pending.redemption = &outcome
	}

	number, err := order.GenerateNumber(now)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate order number")
	}
	placed, err := order.NewOrder(number, draft, pending.discount, pending.redemption, now)
	if err != nil {
		return nil, validationError(err)
	}
	pending.order = placed
	return pending, nil
}

func (o *orderCommandsImpl) commit(ctx context.Context, tx shared.Tx, p *pendingOrder) error {
	if err := tx.Orders().Create(ctx, tx.DB(), p.order); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// order number collision; the next attempt draws a new one
			return errs.Mark(err, ErrCommitConflict)
		}
		return err
	}

	if d := p.discount; d != nil {
		ok, err := tx.Coupons().IncrementUsage(ctx, tx.DB(), d.CouponID, d.UsedCount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCommitConflict
		}
	}

	if r := p.redemption; r != nil && r.Amount.IsPositive() {
		ok, err := tx.GiftCards().Redeem(ctx, tx.DB(), r.CardID, r.BalanceRead, r.Amount)
		if err != nil {
			return err
		}
		if !ok {
			return ErrCommitConflict
		}
	}

	payload, err := json.Marshal(orderCreatedPayload(p.order))
	if err != nil {
		return errs.Wrap(err, "failed to encode order_created payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindOrderCreated, shared.TopicOrders, payload, p.order.CreatedAt())
}

func (o *orderCommandsImpl) UpdateStatus(ctx context.Context, orderNumber string, req reqdto.UpdateOrderStatusRequest) error {
	status, err := req.ToDomain()
	if err != nil {
		return validationError(err)
	}

	orderNumber = order.CanonicalNumber(orderNumber)
	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := o.clock.Now()
		ok, err := tx.Orders().UpdateStatus(ctx, tx.DB(), orderNumber, status, now)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderNotFound
		}

		payload, err := json.Marshal(shared.OrderStatusChangedPayload{
			OrderNumber: orderNumber,
			Status:      status.String(),
			ChangedAt:   now,
		})
		if err != nil {
			return errs.Wrap(err, "failed to encode order_status_changed payload")
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), shared.JobKindOrderStatusChanged, shared.TopicOrders, payload, now)
	})
}

func orderCreatedPayload(o *order.Order) shared.OrderCreatedPayload {
	p := shared.OrderCreatedPayload{
		OrderID:       o.ID(),
		OrderNumber:   o.Number().String(),
		CustomerEmail: o.Customer().Email(),
		FinalAmount:   o.Totals().Final,
		PlacedAt:      o.CreatedAt(),
	}
	if c := o.CouponCode(); c != nil {
		s := c.String()
		p.CouponCode = &s
	}
	if g := o.GiftCardNumber(); g != nil {
		s := g.String()
		p.GiftCardNumber = &s
	}
	return p
}

func fingerprint(req reqdto.PlaceOrderRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

func checkoutOutcome(result *PlaceOrderResult, err error) string {
	switch {
	case err == nil && result != nil && result.IsReplayed:
		return OutcomeReplayed
	case err == nil:
		return OutcomePlaced
	case coupon.IsRejection(err) || giftcard.IsRejection(err):
		return OutcomeRejected
	case errors.Is(err, ErrCheckoutConflict):
		return OutcomeConflict
	case errors.Is(err, errs.ErrDomainValidation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
