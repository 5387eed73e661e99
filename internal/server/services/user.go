package services

import (
	"context"
	"database/sql"

	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
	"github.com/jand6793/chat-website-backend/internal/server/repositories/repomanager"
)

// UserService handles account registration, lookup, and self-service
// updates.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Get lists users matching the criteria.
func (s *UserService) Get(ctx context.Context, crit criteria.User) ([]dbx.Record, error) {
	result := s.repomanager.Users(s.db).Get(ctx, crit, false)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}

// Create registers a new account.
func (s *UserService) Create(ctx context.Context, user models.UserCreate) ([]dbx.Record, error) {
	result := s.repomanager.Users(s.db).Create(ctx, user)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}

// Update applies a partial update to the caller's own account.
func (s *UserService) Update(ctx context.Context, caller *models.User, update models.UserUpdate, returnResults bool) ([]dbx.Record, error) {
	result := s.repomanager.Users(s.db).Update(ctx, caller.ID, update, returnResults)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}

// Delete flips the soft-delete flag on the caller's own account.
func (s *UserService) Delete(ctx context.Context, caller *models.User, deleted bool, returnResults bool) ([]dbx.Record, error) {
	result := s.repomanager.Users(s.db).Delete(ctx, caller.ID, deleted, returnResults)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}
