package httpapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jand6793/chat-website-backend/internal/common"
)

// errorBody is the JSON error envelope.
type errorBody struct {
	Detail string `json:"detail"`
}

// writeError maps a service error onto its HTTP response. Credential
// failures carry the WWW-Authenticate challenge; store failures expose no
// driver detail.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return c.JSON(http.StatusUnauthorized, errorBody{Detail: "Could not validate credentials"})
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Detail: err.Error()})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody{Detail: err.Error()})
	case errors.Is(err, common.ErrForbidden):
		return c.JSON(http.StatusForbidden, errorBody{Detail: err.Error()})
	case errors.Is(err, common.ErrDuplicate):
		return c.JSON(http.StatusConflict, errorBody{Detail: "User with the given username already exists."})
	case errors.Is(err, common.ErrStore):
		return c.JSON(http.StatusNotImplemented, errorBody{Detail: "An error occurred while processing the request."})
	default:
		return c.JSON(http.StatusInternalServerError, errorBody{Detail: "Internal server error"})
	}
}
