package repomanager

import (
	"context"
	"database/sql"

	"github.com/jand6793/chat-website-backend/internal/server/repositories/messages"
	"github.com/jand6793/chat-website-backend/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db *sql.DB) users.Repository
	Messages(db *sql.DB) messages.Repository
}
