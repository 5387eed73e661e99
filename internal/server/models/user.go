// Package models defines the entity shapes exchanged between the HTTP
// layer, services, and repositories, plus request validation.
package models

import (
	"encoding/json"
	"time"
)

// User is the public shape of a users row. hashed_password never appears
// here; it only exists on UserInDB for the internal login lookup.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Username     string    `json:"username"`
	Description  *string   `json:"description"`
	Created      time.Time `json:"created"`
	LastModified time.Time `json:"last_modified"`
	Deleted      bool      `json:"deleted"`
}

// UserInDB extends User with the stored password hash. Internal use only.
type UserInDB struct {
	User
	HashedPassword string `json:"hashed_password"`
}

// UserCreate is the registration request body. Field bounds: names 1-100
// characters, descriptions up to 10000, passwords 1-72 bytes (the bcrypt
// input limit).
type UserCreate struct {
	FullName    string  `json:"full_name" validate:"required,min=1,max=100"`
	Username    string  `json:"username" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1,max=10000"`
	Password    string  `json:"password" validate:"required,min=1,max=72"`
}

// UserUpdate is a partial update: only supplied fields change. Username is
// immutable and therefore absent.
type UserUpdate struct {
	FullName    *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,min=1,max=10000"`
	Password    *string `json:"password" validate:"omitempty,min=1,max=72"`
}

// HasValues reports whether at least one property was supplied.
func (u UserUpdate) HasValues() bool {
	return u.FullName != nil || u.Description != nil || u.Password != nil
}

// UserFromRecord decodes one result record into a User.
func UserFromRecord(record map[string]any) (User, error) {
	var u User
	if err := decodeRecord(record, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// UserInDBFromRecord decodes one login-path record into a UserInDB.
func UserInDBFromRecord(record map[string]any) (UserInDB, error) {
	var u UserInDB
	if err := decodeRecord(record, &u); err != nil {
		return UserInDB{}, err
	}
	return u, nil
}

// decodeRecord maps a string-keyed record onto a typed struct via its JSON
// tags. Records come out of jsonb columns, so a round trip is exact.
func decodeRecord(record map[string]any, dst any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
