package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jand6793/chat-website-backend/internal/server/models"
)

// loginForAccessToken implements the password grant: form credentials in,
// bearer token out. The failure response never says which part was wrong.
func (s *Server) loginForAccessToken(c echo.Context) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Detail: "Malformed request body"})
	}
	if err := models.Validate(creds); err != nil {
		return writeError(c, err)
	}

	token, err := s.auth.Login(c.Request().Context(), creds.Username, creds.Password)
	if err != nil {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return c.JSON(http.StatusUnauthorized, errorBody{Detail: "Incorrect username or password"})
	}

	return c.JSON(http.StatusOK, token)
}
