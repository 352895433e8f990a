package repository

import (
	"context"
	"time"

	"gin-order-admin/internal/domain/user"
	"gin-order-admin/internal/infra"
	"gin-order-admin/internal/infra/db"

	"github.com/google/uuid"
)

const insertUserSQL = `
INSERT INTO users (id, email, display_name, password_hash, role, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const updateUserLastLoginSQL = `
UPDATE users SET last_login = $2, updated_at = $2
WHERE id = $1`

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, insertUserSQL,
		u.ID(), u.Email().Value(), u.DisplayName(), u.PasswordHash(), u.Role().String(),
		u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID, at time.Time) error {
	_, err := tx.Exec(ctx, updateUserLastLoginSQL, userID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
