// Package httpapi exposes the chat service over HTTP: token issuance, user
// accounts, direct messages, and conversation listings.
package httpapi

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/jand6793/chat-website-backend/internal/logging"
	"github.com/jand6793/chat-website-backend/internal/server/services"
)

// Server wires the service layer to the echo router.
type Server struct {
	echo          *echo.Echo
	logger        logging.Logger
	addr          string
	auth          *services.AuthService
	users         *services.UserService
	messages      *services.MessageService
	conversations *services.ConversationService
}

// NewServer builds the router with all routes and middleware registered.
func NewServer(addr string, logger logging.Logger, auth *services.AuthService, users *services.UserService, messages *services.MessageService, conversations *services.ConversationService) *Server {
	s := &Server{
		logger:        logger,
		addr:          addr,
		auth:          auth,
		users:         users,
		messages:      messages,
		conversations: conversations,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(RequestID())
	e.Use(s.AccessLog())

	api := e.Group("/api/v1")
	api.POST("/token", s.loginForAccessToken)
	api.POST("/users", s.createUser)

	authed := api.Group("", s.Authenticate())
	authed.GET("/users", s.getUsers)
	authed.GET("/users/me", s.readUserMe)
	authed.PATCH("/users/me", s.updateUserMe)
	authed.DELETE("/users/me", s.deleteUserMe)
	authed.GET("/messages", s.getMessages)
	authed.POST("/messages", s.createMessage)
	authed.PATCH("/messages/:message_id", s.updateMessage)
	authed.DELETE("/messages/:message_id", s.deleteMessage)
	authed.GET("/conversations", s.getConversations)

	s.echo = e
	return s
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	return s.echo.Start(s.addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
