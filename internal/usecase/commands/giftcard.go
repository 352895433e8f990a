package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"
	"log/slog"

	"gin-order-admin/internal/domain/giftcard"
	reqdto "gin-order-admin/internal/handler/dto/request"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/shared"
)

var (
	ErrGiftCardNotFound    = errs.New("gift card not found")
	ErrGiftCardNumberTaken = errs.New("gift card number already exists")
)

const maxNumberDraws = 3

type GiftCardCommands interface {
	Issue(ctx context.Context, req reqdto.IssueGiftCardRequest) (string, error)
	SetStatus(ctx context.Context, number string, req reqdto.SetGiftCardStatusRequest) error
}

type giftCardCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewGiftCardCommands(uow shared.UnitOfWork, clk clock.Clock) GiftCardCommands {
	return &giftCardCommandsImpl{uow: uow, clock: clk}
}

func (u *giftCardCommandsImpl) Issue(ctx context.Context, req reqdto.IssueGiftCardRequest) (string, error) {
	for draw := 1; ; draw++ {
		g, err := req.ToDomain(u.clock.Now())
		if err != nil {
			return "", validationError(err)
		}

		err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.GiftCards().Create(ctx, tx.DB(), g)
		})
		if err == nil {
			return g.Number().String(), nil
		}
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			return "", err
		}
		if req.HasNumber() || draw >= maxNumberDraws {
			return "", errs.Mark(err, ErrGiftCardNumberTaken)
		}
		slog.Warn("generated gift card number collided, drawing again", "draw", draw)
	}
}

func (u *giftCardCommandsImpl) SetStatus(ctx context.Context, number string, req reqdto.SetGiftCardStatusRequest) error {
	status, err := req.ToDomain()
	if err != nil {
		return validationError(err)
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		g, err := tx.Reads().GiftCardByNumber(ctx, giftcard.CanonicalNumber(number))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrGiftCardNotFound)
			}
			return err
		}
		g.ChangeStatus(status, u.clock.Now())
		return tx.GiftCards().UpdateStatus(ctx, tx.DB(), g)
	})
}
