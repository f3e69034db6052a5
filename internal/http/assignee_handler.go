package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-service.com/todo-service/internal/data_models"
	apperrors "todo-service.com/todo-service/internal/errors"
)

func (h *Handler) ListAssignees(c echo.Context) error {
	assignees, err := h.assigneeService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, assignees)
}

func (h *Handler) GetAssignee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	assignee, err := h.assigneeService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, assignee)
}

func (h *Handler) CreateAssignee(c echo.Context) error {
	var req dto.AssigneeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	assignee, err := h.assigneeService.Create(c.Request().Context(), &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, assignee)
}

func (h *Handler) UpdateAssignee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	exists, err := h.assigneeService.Exists(ctx, id)
	if err != nil {
		return httpError(err)
	}
	if !exists {
		return httpError(apperrors.NotFound(apperrors.EntityAssignee, id))
	}

	var req dto.AssigneeRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	assignee, err := h.assigneeService.Update(ctx, id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, assignee)
}

func (h *Handler) DeleteAssignee(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.assigneeService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
