// Package messages is the store access layer for direct messages.
package messages

import (
	"context"

	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, callerID int64, crit criteria.Message) dbx.ExecResult
	GetByID(ctx context.Context, id int64) dbx.ExecResult
	Create(ctx context.Context, message models.MessageToDB) dbx.ExecResult
	Update(ctx context.Context, id int64, update models.MessageUpdate, returnResults bool) dbx.ExecResult
	Delete(ctx context.Context, id int64, deleted bool, returnResults bool) dbx.ExecResult
}
