package httpapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jand6793/chat-website-backend/internal/common"
	"github.com/jand6793/chat-website-backend/internal/dbx"
	"github.com/jand6793/chat-website-backend/internal/server/models"
)

// itemsBody wraps list responses.
type itemsBody struct {
	Items []dbx.Record `json:"items"`
}

func (s *Server) getUsers(c echo.Context) error {
	crit, err := bindUserCriteria(c)
	if err != nil {
		return writeError(c, err)
	}

	records, err := s.users.Get(c.Request().Context(), crit)
	if err != nil {
		return writeError(c, err)
	}
	if len(records) == 0 {
		return c.JSON(http.StatusNotFound, errorBody{Detail: "No users found with the given criteria."})
	}

	return c.JSON(http.StatusOK, itemsBody{Items: records})
}

// createUser registers an account. This is the only unauthenticated write.
func (s *Server) createUser(c echo.Context) error {
	var user models.UserCreate
	if err := c.Bind(&user); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Detail: "Malformed request body"})
	}
	if err := models.Validate(user); err != nil {
		return writeError(c, err)
	}

	records, err := s.users.Create(c.Request().Context(), user)
	if err != nil {
		return writeError(c, err)
	}

	if boolQueryParam(c, "return_results") && len(records) > 0 {
		return c.JSON(http.StatusCreated, records[0])
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) readUserMe(c echo.Context) error {
	return c.JSON(http.StatusOK, currentUser(c))
}

func (s *Server) updateUserMe(c echo.Context) error {
	var update models.UserUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Detail: "Malformed request body"})
	}
	if err := models.Validate(update); err != nil {
		return writeError(c, err)
	}
	if !update.HasValues() {
		return writeError(c, fmt.Errorf("%w: at least one property is required", common.ErrValidation))
	}

	returnResults := boolQueryParam(c, "return_results")
	records, err := s.users.Update(c.Request().Context(), currentUser(c), update, returnResults)
	if err != nil {
		return writeError(c, err)
	}

	if returnResults && len(records) > 0 {
		return c.JSON(http.StatusAccepted, records[0])
	}
	return c.NoContent(http.StatusAccepted)
}

// deleteUserMe soft-deletes (or restores, with delete=false) the caller's
// account.
func (s *Server) deleteUserMe(c echo.Context) error {
	deleted := true
	if c.QueryParam("delete") != "" {
		deleted = boolQueryParam(c, "delete")
	}

	returnResults := boolQueryParam(c, "return_results")
	records, err := s.users.Delete(c.Request().Context(), currentUser(c), deleted, returnResults)
	if err != nil {
		return writeError(c, err)
	}

	if returnResults && len(records) > 0 {
		return c.JSON(http.StatusAccepted, records[0])
	}
	return c.NoContent(http.StatusAccepted)
}
