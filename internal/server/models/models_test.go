package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jand6793/chat-website-backend/internal/common"
)

func strptr(s string) *string { return &s }

func TestValidateUserCreate(t *testing.T) {
	tests := []struct {
		name    string
		user    UserCreate
		wantErr bool
	}{
		{
			name: "valid",
			user: UserCreate{FullName: "Ada Lovelace", Username: "ada", Password: "s3cret"},
		},
		{
			name: "valid with description",
			user: UserCreate{FullName: "Ada", Username: "ada", Description: strptr("mathematician"), Password: "s3cret"},
		},
		{
			name:    "missing username",
			user:    UserCreate{FullName: "Ada", Password: "s3cret"},
			wantErr: true,
		},
		{
			name: "password at the 72-character cap",
			user: UserCreate{FullName: "Ada", Username: "ada", Password: strings.Repeat("x", 72)},
		},
		{
			name:    "password too long",
			user:    UserCreate{FullName: "Ada", Username: "ada", Password: strings.Repeat("x", 73)},
			wantErr: true,
		},
		{
			name:    "empty description",
			user:    UserCreate{FullName: "Ada", Username: "ada", Description: strptr(""), Password: "s3cret"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.user)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, common.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateMessageCreate(t *testing.T) {
	err := Validate(MessageCreate{TargetUserID: 2, Content: "hello"})
	assert.NoError(t, err)

	err = Validate(MessageCreate{TargetUserID: 0, Content: "hello"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))

	err = Validate(MessageCreate{TargetUserID: 2, Content: strings.Repeat("y", 10001)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation))
}

func TestUpdateHasValues(t *testing.T) {
	assert.False(t, UserUpdate{}.HasValues())
	assert.True(t, UserUpdate{FullName: strptr("Ada")}.HasValues())
	assert.False(t, MessageUpdate{}.HasValues())
	assert.True(t, MessageUpdate{Content: strptr("edited")}.HasValues())
}

func TestUserFromRecord(t *testing.T) {
	record := map[string]any{
		"id":            float64(7),
		"full_name":     "Ada Lovelace",
		"username":      "ada",
		"description":   nil,
		"created":       "2026-01-15T10:30:00+00:00",
		"last_modified": "2026-01-15T10:30:00+00:00",
		"deleted":       false,
	}
	u, err := UserFromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)
	assert.Equal(t, "ada", u.Username)
	assert.Nil(t, u.Description)
	assert.Equal(t, 2026, u.Created.Year())
	assert.False(t, u.Deleted)
}

func TestUserInDBFromRecord(t *testing.T) {
	record := map[string]any{
		"id":              float64(7),
		"full_name":       "Ada Lovelace",
		"username":        "ada",
		"description":     "mathematician",
		"created":         "2026-01-15T10:30:00+00:00",
		"last_modified":   "2026-01-15T10:30:00+00:00",
		"deleted":         false,
		"hashed_password": "$2a$10$abcdefgh",
	}
	u, err := UserInDBFromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$abcdefgh", u.HashedPassword)
	require.NotNil(t, u.Description)
	assert.Equal(t, "mathematician", *u.Description)
}

func TestMessageFromRecord(t *testing.T) {
	record := map[string]any{
		"id":             float64(3),
		"source_user_id": float64(1),
		"target_user_id": float64(2),
		"content":        "hello",
		"created":        "2026-02-01T08:00:00+00:00",
		"last_modified":  "2026-02-01T08:00:00+00:00",
		"deleted":        false,
	}
	m, err := MessageFromRecord(record)
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.SourceUserID)
	assert.Equal(t, int64(2), m.TargetUserID)
	assert.Equal(t, "hello", m.Content)
}
