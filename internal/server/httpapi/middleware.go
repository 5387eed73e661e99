package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jand6793/chat-website-backend/internal/server/models"
)

const (
	// RequestIDHeader carries the request correlation id.
	RequestIDHeader = "X-Request-ID"

	requestIDKey   = "request_id"
	currentUserKey = "current_user"
)

// RequestID ensures each request has a correlation id: an incoming
// X-Request-ID is reused, otherwise a UUID is generated. The id is stored in
// the echo context and echoed back on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Set(requestIDKey, requestID)
			c.Response().Header().Set(RequestIDHeader, requestID)
			return next(c)
		}
	}
}

// AccessLog logs one line per request with method, path, status, duration,
// and the correlation id.
func (s *Server) AccessLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			requestID, _ := c.Get(requestIDKey).(string)
			s.logger.Info(c.Request().Context(), "request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration", time.Since(start).String(),
				"request_id", requestID,
			)
			return err
		}
	}
}

// Authenticate resolves the bearer token to the calling account and stores
// it in the echo context. Requests without a valid token get 401 with the
// WWW-Authenticate challenge.
func (s *Server) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
				return c.JSON(http.StatusUnauthorized, errorBody{Detail: "Not authenticated"})
			}

			user, err := s.auth.CurrentUser(c.Request().Context(), token)
			if err != nil {
				return writeError(c, err)
			}

			c.Set(currentUserKey, user)
			return next(c)
		}
	}
}

// currentUser reads the authenticated account set by Authenticate.
func currentUser(c echo.Context) *models.User {
	user, _ := c.Get(currentUserKey).(*models.User)
	return user
}
