package services

import (
	"context"
	"database/sql"

	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
	"github.com/jand6793/chat-website-backend/internal/server/repositories/repomanager"
)

// ConversationService groups the caller's messages by the other
// participant.
type ConversationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewConversationService constructs a ConversationService.
func NewConversationService(db *sql.DB, m repomanager.RepositoryManager) *ConversationService {
	return &ConversationService{db: db, repomanager: m}
}

// Get returns one conversation per distinct correspondent: the
// correspondent's public record plus every live message exchanged with
// them. A caller with no messages gets an empty list.
func (s *ConversationService) Get(ctx context.Context, caller *models.User) ([]models.Conversation, error) {
	messages := s.repomanager.Messages(s.db).Get(ctx, caller.ID, criteria.Message{})
	if messages.Err != nil {
		return nil, messages.Err
	}

	otherIDs := collectOtherIDs(messages.Records, caller.ID)
	users := s.repomanager.Users(s.db).GetByIDs(ctx, otherIDs)
	if users.Err != nil {
		return nil, users.Err
	}

	return buildConversations(users.Records, messages.Records), nil
}

// collectOtherIDs gathers the distinct participants other than the caller,
// preserving first-seen order.
func collectOtherIDs(messages []dbx.Record, callerID int64) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, m := range messages {
		for _, key := range []string{"source_user_id", "target_user_id"} {
			id := recordID(m, key)
			if id == callerID {
				continue
			}
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func buildConversations(users, messages []dbx.Record) []models.Conversation {
	conversations := make([]models.Conversation, 0, len(users))
	for _, user := range users {
		id := recordID(user, "id")

		related := make([]map[string]any, 0)
		for _, m := range messages {
			if recordID(m, "source_user_id") == id || recordID(m, "target_user_id") == id {
				related = append(related, m)
			}
		}

		conversations = append(conversations, models.Conversation{
			User:     user,
			Messages: related,
		})
	}
	return conversations
}

// recordID reads a numeric jsonb field as an id. Decoded numbers arrive as
// float64.
func recordID(record dbx.Record, key string) int64 {
	v, _ := record[key].(float64)
	return int64(v)
}
