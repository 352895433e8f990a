//go:build unit

package commands_test

import (
	"context"
	"regexp"
	"testing"

	"gin-order-admin/internal/domain/giftcard"
	reqdto "gin-order-admin/internal/handler/dto/request"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/errs"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var generatedNumber = regexp.MustCompile(`^GC-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-F]{4}$`)

type GiftCardCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *uowMocks
	cmds commands.GiftCardCommands
}

func (s *GiftCardCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newUowMocks(s.ctrl)
	s.cmds = commands.NewGiftCardCommands(s.m.uow, clock.NewMockClock(now))
}

func (s *GiftCardCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestGiftCardCommandsSuite(t *testing.T) {
	suite.Run(t, new(GiftCardCommandsTestSuite))
}

func (s *GiftCardCommandsTestSuite) TestIssue() {
	s.Run("success: supplied number", func() {
		var stored *giftcard.GiftCard
		s.m.expectWithin(1)
		s.m.giftCards.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, g *giftcard.GiftCard) error {
				stored = g
				return nil
			})

		number, err := s.cmds.Issue(context.Background(), builder.NewGiftCardBuilder().BuildIssueDTO())

		s.Require().NoError(err)
		s.Equal("GC-1A2B-3C4D-5E6F", number)
		s.True(stored.Balance().Equal(stored.InitialBalance()))
		s.Equal(giftcard.StatusActive, stored.Status())
	})

	s.Run("success: generated number redrawn after a collision", func() {
		req := reqdto.IssueGiftCardRequest{InitialBalance: decimal.NewFromInt(25)}

		var drawn []string
		s.m.expectWithin(2)
		gomock.InOrder(
			s.m.giftCards.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ db.DBTX, g *giftcard.GiftCard) error {
					drawn = append(drawn, g.Number().String())
					return infra.RepositoryError{Kind: infra.KindDuplicateKey}
				}),
			s.m.giftCards.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ db.DBTX, g *giftcard.GiftCard) error {
					drawn = append(drawn, g.Number().String())
					return nil
				}),
		)

		number, err := s.cmds.Issue(context.Background(), req)

		s.Require().NoError(err)
		s.Require().Len(drawn, 2)
		s.Equal(drawn[1], number)
		s.Regexp(generatedNumber, number)
	})

	s.Run("error: generated numbers keep colliding", func() {
		req := reqdto.IssueGiftCardRequest{InitialBalance: decimal.NewFromInt(25)}

		s.m.expectWithin(3)
		s.m.giftCards.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey}).Times(3)

		_, err := s.cmds.Issue(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrGiftCardNumberTaken)
	})

	s.Run("error: supplied number already issued", func() {
		s.m.expectWithin(1)
		s.m.giftCards.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.RepositoryError{Kind: infra.KindDuplicateKey})

		_, err := s.cmds.Issue(context.Background(), builder.NewGiftCardBuilder().BuildIssueDTO())

		s.Require().ErrorIs(err, commands.ErrGiftCardNumberTaken)
	})

	s.Run("error: non-positive balance", func() {
		req := builder.NewGiftCardBuilder().With(func(b *builder.GiftCardBuilder) {
			b.InitialBalance = decimal.Zero
		}).BuildIssueDTO()

		_, err := s.cmds.Issue(context.Background(), req)

		s.Require().ErrorIs(err, errs.ErrDomainValidation)
		s.Require().ErrorIs(err, giftcard.ErrInvalidInitialBalance)
	})
}

func (s *GiftCardCommandsTestSuite) TestSetStatus() {
	s.Run("success: disable keeps the balance", func() {
		b := builder.NewGiftCardBuilder().WithBalance("12.50")

		var stored *giftcard.GiftCard
		s.m.expectWithin(1)
		s.m.reads.EXPECT().GiftCardByNumber(gomock.Any(), b.Number).Return(b.MustBuildDomain(), nil)
		s.m.giftCards.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, g *giftcard.GiftCard) error {
				stored = g
				return nil
			})

		err := s.cmds.SetStatus(context.Background(), "gc-1a2b-3c4d-5e6f", reqdto.SetGiftCardStatusRequest{Status: "disabled"})

		s.Require().NoError(err)
		s.Equal(giftcard.StatusDisabled, stored.Status())
		s.Equal("12.50", stored.Balance().StringFixed(2))
		s.Equal(now, stored.UpdatedAt())
	})

	s.Run("error: unknown card", func() {
		s.m.expectWithin(1)
		s.m.reads.EXPECT().GiftCardByNumber(gomock.Any(), gomock.Any()).Return(nil, errNotFound)

		err := s.cmds.SetStatus(context.Background(), "GC-0000-0000-0000", reqdto.SetGiftCardStatusRequest{Status: "active"})

		s.Require().ErrorIs(err, commands.ErrGiftCardNotFound)
	})

	s.Run("error: unknown status", func() {
		err := s.cmds.SetStatus(context.Background(), "GC-0000-0000-0000", reqdto.SetGiftCardStatusRequest{Status: "frozen"})

		s.Require().ErrorIs(err, errs.ErrDomainValidation)
	})
}
