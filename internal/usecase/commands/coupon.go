package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"gin-order-admin/internal/domain/coupon"
	reqdto "gin-order-admin/internal/handler/dto/request"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/shared"
)

var (
	ErrCouponNotFound  = errs.New("coupon not found")
	ErrCouponCodeTaken = errs.New("coupon code already exists")
	ErrCouponInUse     = errs.New("coupon has been used by orders")
)

type CouponCommands interface {
	Create(ctx context.Context, req reqdto.CreateCouponRequest) (string, error)
	Update(ctx context.Context, code string, req reqdto.UpdateCouponRequest) error
	SetActive(ctx context.Context, code string, active bool) error
	Delete(ctx context.Context, code string) error
}

type couponCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCouponCommands(uow shared.UnitOfWork, clk clock.Clock) CouponCommands {
	return &couponCommandsImpl{uow: uow, clock: clk}
}

func (u *couponCommandsImpl) Create(ctx context.Context, req reqdto.CreateCouponRequest) (string, error) {
	c, err := req.ToDomain(u.clock.Now())
	if err != nil {
		return "", validationError(err)
	}

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Create(ctx, tx.DB(), c)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return "", errs.Mark(err, ErrCouponCodeTaken)
		}
		return "", err
	}
	return c.Code().String(), nil
}

func (u *couponCommandsImpl) Update(ctx context.Context, code string, req reqdto.UpdateCouponRequest) error {
	return u.withCoupon(ctx, code, func(ctx context.Context, tx shared.Tx, c *coupon.Coupon) error {
		if err := req.ApplyTo(c, u.clock.Now()); err != nil {
			return validationError(err)
		}
		if err := tx.Coupons().Update(ctx, tx.DB(), c); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// used_count moved past the new limit after we read it
				return validationError(errs.Mark(err, coupon.ErrUsageLimitBelowUsed))
			}
			return err
		}
		return nil
	})
}

func (u *couponCommandsImpl) SetActive(ctx context.Context, code string, active bool) error {
	return u.withCoupon(ctx, code, func(ctx context.Context, tx shared.Tx, c *coupon.Coupon) error {
		now := u.clock.Now()
		if active {
			c.Activate(now)
		} else {
			c.Deactivate(now)
		}
		err := tx.Coupons().Update(ctx, tx.DB(), c)
		if infra.IsKind(err, infra.KindConflict) {
			return validationError(errs.Mark(err, coupon.ErrUsageLimitBelowUsed))
		}
		return err
	})
}

// Delete refuses coupons that any order references; deactivate those instead.
func (u *couponCommandsImpl) Delete(ctx context.Context, code string) error {
	return u.withCoupon(ctx, code, func(ctx context.Context, tx shared.Tx, c *coupon.Coupon) error {
		referenced, err := tx.Reads().CouponReferenced(ctx, c.Code().String())
		if err != nil {
			return err
		}
		if referenced || c.UsedCount() > 0 {
			return ErrCouponInUse
		}

		err = tx.Coupons().Delete(ctx, tx.DB(), c.ID())
		switch {
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrCouponInUse)
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrCouponNotFound)
		}
		return err
	})
}

func (u *couponCommandsImpl) withCoupon(ctx context.Context, code string, fn func(context.Context, shared.Tx, *coupon.Coupon) error) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CouponByCode(ctx, coupon.CanonicalCode(code))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrCouponNotFound)
			}
			return err
		}
		return fn(ctx, tx, c)
	})
}
