// Package users is the store access layer for user accounts.
package users

import (
	"context"

	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, crit criteria.User, isLogin bool) dbx.ExecResult
	GetByIDs(ctx context.Context, ids []int64) dbx.ExecResult
	Create(ctx context.Context, user models.UserCreate) dbx.ExecResult
	Update(ctx context.Context, id int64, update models.UserUpdate, returnResults bool) dbx.ExecResult
	Delete(ctx context.Context, id int64, deleted bool, returnResults bool) dbx.ExecResult
}
