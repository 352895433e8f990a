//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gin-order-admin/internal/domain/user"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/pkg/clock"
	"gin-order-admin/internal/pkg/jwt"
	"gin-order-admin/internal/pkg/password"
	"gin-order-admin/internal/usecase/commands"
	"gin-order-admin/tests/common/builder"
	queriesmock "gin-order-admin/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	m          *uowMocks
	readStore  *queriesmock.MockUserReadStore
	jwtService *jwt.Service
	cmds       commands.AuthCommands
	hash       string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.HashPasswordWithCost("password123", bcrypt.MinCost)
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newUowMocks(s.ctrl)
	s.readStore = queriesmock.NewMockUserReadStore(s.ctrl)
	s.jwtService = jwt.NewService("test-secret-key-for-order-admin", time.Hour, "gin-order-admin-test")
	s.cmds = commands.NewAuthCommands(s.m.uow, s.readStore, s.jwtService, clock.NewMockClock(now))
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	s.Run("success: token carries the user and role", func() {
		account := builder.NewUserBuilder().WithRole("operator").BuildReadModel()

		s.readStore.EXPECT().FindByEmail(gomock.Any(), "test@example.com").Return(account, s.hash, nil)
		s.m.expectWithin(1)
		s.m.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), account.ID, now).Return(nil)

		req := builder.NewAuthBuilder().BuildDTO()
		req.Email = "  Test@Example.com "
		result, err := s.cmds.Login(context.Background(), req)

		s.Require().NoError(err)
		s.Equal(account.ID, result.UserID)
		s.Equal(user.RoleOperator, result.Role)

		claims, err := s.jwtService.ValidateToken(result.AccessToken)
		s.Require().NoError(err)
		s.Equal(account.ID, claims.UserID)
		s.Equal("operator", claims.Role)
		s.WithinDuration(claims.ExpiresAt.Time, result.ExpiresAt, time.Second)
	})

	s.Run("success: last login write failure does not block sign-in", func() {
		account := builder.NewUserBuilder().BuildReadModel()

		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(account, s.hash, nil)
		s.m.expectWithin(1)
		s.m.users.EXPECT().UpdateLastLogin(gomock.Any(), gomock.Any(), account.ID, now).
			Return(infra.RepositoryError{Kind: infra.KindDBFailure})

		result, err := s.cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		s.Require().NoError(err)
		s.NotEmpty(result.AccessToken)
	})

	s.Run("error: wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().BuildReadModel(), s.hash, nil)

		req := builder.NewAuthBuilder().BuildDTO()
		req.Password = "not-the-password"
		_, err := s.cmds.Login(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: unknown email answers like a wrong password", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(nil, "", infra.RepositoryError{Kind: infra.KindNotFound})

		_, err := s.cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		s.Require().ErrorIs(err, commands.ErrInvalidCredentials)
	})

	s.Run("error: inactive account", func() {
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).
			Return(builder.NewUserBuilder().AsInactive().BuildReadModel(), s.hash, nil)

		_, err := s.cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		s.Require().ErrorIs(err, commands.ErrUserInactive)
	})

	s.Run("error: malformed email", func() {
		req := builder.NewAuthBuilder().BuildDTO()
		req.Email = "not-an-email"

		_, err := s.cmds.Login(context.Background(), req)

		s.Require().ErrorIs(err, commands.ErrAuthenticationFailed)
	})

	s.Run("error: read store failure", func() {
		storeErr := errors.New("connection reset")
		s.readStore.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, "", storeErr)

		_, err := s.cmds.Login(context.Background(), builder.NewAuthBuilder().BuildDTO())

		s.Require().ErrorIs(err, storeErr)
	})
}
