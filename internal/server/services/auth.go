// Package services contains server-side business logic. This file implements
// AuthService, which verifies credentials, mints access tokens, and resolves
// bearer tokens back to users.
package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/jand6793/chat-website-backend/internal/common"
	"github.com/jand6793/chat-website-backend/internal/server/auth"
	"github.com/jand6793/chat-website-backend/internal/server/config"
	"github.com/jand6793/chat-website-backend/internal/server/criteria"
	"github.com/jand6793/chat-website-backend/internal/server/models"
	"github.com/jand6793/chat-website-backend/internal/server/repositories/repomanager"
)

// AuthService provides authentication-related operations:
// - Login: verify credentials and mint an access token
// - CurrentUser: resolve a bearer token to its live account
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	secretKey                   []byte
	jwtAlgorithm                string
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		secretKey:                   []byte(cfg.SecretKey),
		jwtAlgorithm:                cfg.JWTAlgorithm,
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Login verifies the credentials and returns a bearer token. An unknown
// username, a deleted account, and a wrong password all produce the same
// common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Token, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	tokenString, err := auth.GenerateToken(user.Username, s.secretKey, s.jwtAlgorithm, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	return &models.Token{AccessToken: tokenString, TokenType: "bearer"}, nil
}

// CurrentUser resolves a bearer token to its account. A bad token and a
// token whose account no longer exists are indistinguishable to the caller.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	username, err := auth.GetUsernameFromToken(tokenString, s.secretKey)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}

	user, err := s.getByUsername(ctx, username)
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) authenticate(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	result := repo.Get(ctx, criteria.User{Username: criteria.Equals(username)}, true)
	if result.Err != nil || len(result.Records) == 0 {
		return nil, common.ErrInvalidCredentials
	}

	user, err := models.UserInDBFromRecord(result.Records[0])
	if err != nil {
		return nil, common.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, common.ErrInvalidCredentials
	}

	return &user.User, nil
}

func (s *AuthService) getByUsername(ctx context.Context, username string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	result := repo.Get(ctx, criteria.User{Username: criteria.Equals(username)}, false)
	if result.Err != nil {
		return nil, result.Err
	}
	if len(result.Records) == 0 {
		return nil, common.ErrNotFound
	}

	user, err := models.UserFromRecord(result.Records[0])
	if err != nil {
		return nil, err
	}
	return &user, nil
}
