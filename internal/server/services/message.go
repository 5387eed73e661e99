package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jand6793/chat-website-backend/internal/common"
	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
	"github.com/jand6793/chat-website-backend/internal/server/repositories/repomanager"
)

// MessageService handles sending, listing, editing, and deleting direct
// messages. Every operation is scoped to the authenticated caller.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewMessageService constructs a MessageService.
func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Get lists the caller's messages matching the criteria. Messages the
// caller is not a participant of are never returned.
func (s *MessageService) Get(ctx context.Context, callerID int64, crit criteria.Message) ([]dbx.Record, error) {
	result := s.repomanager.Messages(s.db).Get(ctx, callerID, crit)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}

// Create sends a message from the caller. The target must be an existing
// live account other than the caller.
func (s *MessageService) Create(ctx context.Context, caller *models.User, message models.MessageCreate) ([]dbx.Record, error) {
	if message.TargetUserID == caller.ID {
		return nil, fmt.Errorf("%w: target user must differ from the sender", common.ErrValidation)
	}

	targets := s.repomanager.Users(s.db).GetByIDs(ctx, []int64{message.TargetUserID})
	if targets.Err != nil {
		return nil, targets.Err
	}
	if len(targets.Records) != 1 {
		return nil, fmt.Errorf("%w: target user", common.ErrNotFound)
	}

	toDB := models.MessageToDB{
		SourceUserID: caller.ID,
		TargetUserID: message.TargetUserID,
		Content:      message.Content,
	}
	result := s.repomanager.Messages(s.db).Create(ctx, toDB)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}

// Update edits a message's content. A missing message is reported before
// the ownership check, and only the sender may edit.
func (s *MessageService) Update(ctx context.Context, caller *models.User, id int64, update models.MessageUpdate, returnResults bool) ([]dbx.Record, error) {
	if err := s.verifyOwnership(ctx, caller, id); err != nil {
		return nil, err
	}

	result := s.repomanager.Messages(s.db).Update(ctx, id, update, returnResults)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}

// Delete flips the soft-delete flag on a message. Only the sender may
// delete, and deleting an already deleted message is a no-op.
func (s *MessageService) Delete(ctx context.Context, caller *models.User, id int64, deleted bool, returnResults bool) ([]dbx.Record, error) {
	if err := s.verifyOwnership(ctx, caller, id); err != nil {
		return nil, err
	}

	result := s.repomanager.Messages(s.db).Delete(ctx, id, deleted, returnResults)
	if result.Err != nil {
		return nil, result.Err
	}
	return result.Records, nil
}

func (s *MessageService) verifyOwnership(ctx context.Context, caller *models.User, id int64) error {
	result := s.repomanager.Messages(s.db).GetByID(ctx, id)
	if result.Err != nil {
		return result.Err
	}
	if len(result.Records) == 0 {
		return fmt.Errorf("%w: message %d", common.ErrNotFound, id)
	}

	message, err := models.MessageFromRecord(result.Records[0])
	if err != nil {
		return err
	}
	if message.SourceUserID != caller.ID {
		return fmt.Errorf("%w: only the sender may modify a message", common.ErrForbidden)
	}
	return nil
}
