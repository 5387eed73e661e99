package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jand6793/chat-website-backend/internal/common"
	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
)

func caller() *models.User {
	return &models.User{ID: 5, Username: "ada"}
}

func TestMessageGet_PassesCallerID(t *testing.T) {
	msgs := &fakeMessagesRepo{getOut: dbx.ExecResult{Records: []dbx.Record{{"id": float64(1)}}}}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{messages: msgs})

	records, err := svc.Get(context.Background(), 5, criteria.Message{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int64(5), msgs.getCallerID)
}

func TestMessageCreate_Success(t *testing.T) {
	users := &fakeUsersRepo{byIDsOut: dbx.ExecResult{Records: []dbx.Record{{"id": float64(9)}}}}
	msgs := &fakeMessagesRepo{createOut: dbx.ExecResult{Records: []dbx.Record{{"id": float64(3)}}}}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{users: users, messages: msgs})

	records, err := svc.Create(context.Background(), caller(), models.MessageCreate{
		TargetUserID: 9, Content: "hello",
	})
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int64(5), msgs.createIn.SourceUserID, "sender must come from the token, not the body")
	assert.Equal(t, []int64{9}, users.byIDsIn)
}

func TestMessageCreate_SelfTarget(t *testing.T) {
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{})

	_, err := svc.Create(context.Background(), caller(), models.MessageCreate{
		TargetUserID: 5, Content: "hello me",
	})
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestMessageCreate_TargetMissing(t *testing.T) {
	users := &fakeUsersRepo{byIDsOut: dbx.ExecResult{Records: []dbx.Record{}}}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{users: users, messages: &fakeMessagesRepo{}})

	_, err := svc.Create(context.Background(), caller(), models.MessageCreate{
		TargetUserID: 9, Content: "hello",
	})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func ownedMessage(sourceID int64) dbx.Record {
	return dbx.Record{
		"id":             float64(3),
		"source_user_id": float64(sourceID),
		"target_user_id": float64(9),
		"content":        "hello",
		"created":        "2026-02-01T08:00:00+00:00",
		"last_modified":  "2026-02-01T08:00:00+00:00",
		"deleted":        false,
	}
}

func TestMessageUpdate_Owner(t *testing.T) {
	msgs := &fakeMessagesRepo{
		byIDOut:   dbx.ExecResult{Records: []dbx.Record{ownedMessage(5)}},
		updateOut: dbx.ExecResult{Records: []dbx.Record{{"id": float64(3), "content": "edited"}}},
	}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{messages: msgs})

	content := "edited"
	records, err := svc.Update(context.Background(), caller(), 3, models.MessageUpdate{Content: &content}, true)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, int64(3), msgs.updateID)
}

func TestMessageUpdate_MissingBeforeOwnership(t *testing.T) {
	msgs := &fakeMessagesRepo{byIDOut: dbx.ExecResult{Records: []dbx.Record{}}}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{messages: msgs})

	content := "edited"
	_, err := svc.Update(context.Background(), caller(), 3, models.MessageUpdate{Content: &content}, true)
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestMessageUpdate_NotOwner(t *testing.T) {
	msgs := &fakeMessagesRepo{byIDOut: dbx.ExecResult{Records: []dbx.Record{ownedMessage(99)}}}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{messages: msgs})

	content := "edited"
	_, err := svc.Update(context.Background(), caller(), 3, models.MessageUpdate{Content: &content}, true)
	assert.True(t, errors.Is(err, common.ErrForbidden))
}

func TestMessageDelete_Owner(t *testing.T) {
	msgs := &fakeMessagesRepo{
		byIDOut:   dbx.ExecResult{Records: []dbx.Record{ownedMessage(5)}},
		deleteOut: dbx.ExecResult{Records: []dbx.Record{}},
	}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{messages: msgs})

	_, err := svc.Delete(context.Background(), caller(), 3, true, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), msgs.deleteID)
}

func TestMessageDelete_RestoresSoftDeletedMessage(t *testing.T) {
	deleted := ownedMessage(5)
	deleted["deleted"] = true
	msgs := &fakeMessagesRepo{
		byIDOut:   dbx.ExecResult{Records: []dbx.Record{deleted}},
		deleteOut: dbx.ExecResult{Records: []dbx.Record{}},
	}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{messages: msgs})

	_, err := svc.Delete(context.Background(), caller(), 3, false, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), msgs.deleteID)
	assert.False(t, msgs.deleteFlag)
}

func TestMessageDelete_NotOwner(t *testing.T) {
	msgs := &fakeMessagesRepo{byIDOut: dbx.ExecResult{Records: []dbx.Record{ownedMessage(99)}}}
	svc := NewMessageService(newSQLMockDB(t), &fakeRepoManager{messages: msgs})

	_, err := svc.Delete(context.Background(), caller(), 3, true, false)
	assert.True(t, errors.Is(err, common.ErrForbidden))
}
