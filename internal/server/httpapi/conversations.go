package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// getConversations lists the caller's messages grouped by correspondent.
func (s *Server) getConversations(c echo.Context) error {
	conversations, err := s.conversations.Get(c.Request().Context(), currentUser(c))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, conversations)
}
