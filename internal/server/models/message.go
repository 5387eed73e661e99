package models

import "time"

// Message is the public shape of a messages row.
type Message struct {
	ID           int64     `json:"id"`
	SourceUserID int64     `json:"source_user_id"`
	TargetUserID int64     `json:"target_user_id"`
	Content      string    `json:"content"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"last_modified"`
	Deleted      bool      `json:"deleted"`
}

// MessageCreate is the send request body. The sender comes from the access
// token, never from the body.
type MessageCreate struct {
	TargetUserID int64  `json:"target_user_id" validate:"required,gt=0"`
	Content      string `json:"content" validate:"required,min=1,max=10000"`
}

// MessageToDB is MessageCreate with the authenticated sender attached,
// ready for insertion.
type MessageToDB struct {
	SourceUserID int64  `json:"source_user_id"`
	TargetUserID int64  `json:"target_user_id"`
	Content      string `json:"content"`
}

// MessageUpdate is a partial update; only the content can change.
type MessageUpdate struct {
	Content *string `json:"content" validate:"omitempty,min=1,max=10000"`
}

// HasValues reports whether at least one property was supplied.
func (m MessageUpdate) HasValues() bool {
	return m.Content != nil
}

// Conversation pairs one correspondent with every message exchanged with
// them. Records stay in their raw decoded form so the response mirrors the
// stored rows.
type Conversation struct {
	User     map[string]any   `json:"user"`
	Messages []map[string]any `json:"messages"`
}

// MessageFromRecord decodes one result record into a Message.
func MessageFromRecord(record map[string]any) (Message, error) {
	var m Message
	if err := decodeRecord(record, &m); err != nil {
		return Message{}, err
	}
	return m, nil
}
