//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/usecase/queries"
	"gin-order-admin/tests/common/builder"
	queriesmock "gin-order-admin/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetCurrentUser(t *testing.T) {
	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		err     error
		wantErr error
	}{
		{name: "active user", view: builder.NewUserBuilder().BuildReadModel()},
		{name: "inactive user", view: builder.NewUserBuilder().AsInactive().BuildReadModel(), wantErr: queries.ErrUserInactive},
		{name: "missing user", err: infra.RepositoryError{Kind: infra.KindNotFound}, wantErr: queries.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockUserReadStore(ctrl)
			id := uuid.New()
			store.EXPECT().FindByID(gomock.Any(), id).Return(tt.view, tt.err)

			got, err := queries.NewUserQueries(store).GetCurrentUser(context.Background(), id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.view, got)
		})
	}
}
