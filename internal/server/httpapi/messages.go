package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jand6793/chat-website-backend/internal/server/models"
)

func (s *Server) getMessages(c echo.Context) error {
	crit, err := bindMessageCriteria(c)
	if err != nil {
		return writeError(c, err)
	}

	records, err := s.messages.Get(c.Request().Context(), currentUser(c).ID, crit)
	if err != nil {
		return writeError(c, err)
	}
	if len(records) == 0 {
		return c.JSON(http.StatusNotFound, errorBody{Detail: "No messages found with the given criteria."})
	}

	return c.JSON(http.StatusOK, itemsBody{Items: records})
}

func (s *Server) createMessage(c echo.Context) error {
	var message models.MessageCreate
	if err := c.Bind(&message); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Detail: "Malformed request body"})
	}
	if err := models.Validate(message); err != nil {
		return writeError(c, err)
	}

	records, err := s.messages.Create(c.Request().Context(), currentUser(c), message)
	if err != nil {
		return writeError(c, err)
	}

	if boolQueryParam(c, "return_results") && len(records) > 0 {
		return c.JSON(http.StatusCreated, records[0])
	}
	return c.NoContent(http.StatusCreated)
}

func (s *Server) updateMessage(c echo.Context) error {
	id, err := pathID(c, "message_id")
	if err != nil {
		return writeError(c, err)
	}

	var update models.MessageUpdate
	if err := c.Bind(&update); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Detail: "Malformed request body"})
	}
	if err := models.Validate(update); err != nil {
		return writeError(c, err)
	}
	if !update.HasValues() {
		return c.JSON(http.StatusUnprocessableEntity, errorBody{Detail: "At least one property is required"})
	}

	returnResults := boolQueryParam(c, "return_results")
	records, err := s.messages.Update(c.Request().Context(), currentUser(c), id, update, returnResults)
	if err != nil {
		return writeError(c, err)
	}

	if returnResults && len(records) > 0 {
		return c.JSON(http.StatusAccepted, records[0])
	}
	return c.NoContent(http.StatusAccepted)
}

func (s *Server) deleteMessage(c echo.Context) error {
	id, err := pathID(c, "message_id")
	if err != nil {
		return writeError(c, err)
	}

	deleted := true
	if c.QueryParam("delete") != "" {
		deleted = boolQueryParam(c, "delete")
	}

	returnResults := boolQueryParam(c, "return_results")
	records, err := s.messages.Delete(c.Request().Context(), currentUser(c), id, deleted, returnResults)
	if err != nil {
		return writeError(c, err)
	}

	if returnResults && len(records) > 0 {
		return c.JSON(http.StatusAccepted, records[0])
	}
	return c.NoContent(http.StatusAccepted)
}
