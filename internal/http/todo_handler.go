package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "todo-service.com/todo-service/internal/data_models"
	apperrors "todo-service.com/todo-service/internal/errors"
)

func (h *Handler) ListTodos(c echo.Context) error {
	todos, err := h.todoService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, todos)
}

func (h *Handler) GetTodo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) CreateTodo(c echo.Context) error {
	var req dto.TodoPayload
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}

	todo, err := h.todoService.Create(c.Request().Context(), &req)
	if err != nil {
		// An assignee vanishing between check and insert is still bad input.
		if apperrors.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, todo)
}

func (h *Handler) UpdateTodo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	exists, err := h.todoService.Exists(ctx, id)
	if err != nil {
		return httpError(err)
	}
	if !exists {
		return httpError(apperrors.NotFound(apperrors.EntityTodo, id))
	}

	var req dto.TodoPayload
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := h.todoService.CheckUpdateRequest(ctx, &req); err != nil {
		return httpError(err)
	}

	todo, err := h.todoService.Update(ctx, id, &req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) FinishTodo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	todo, err := h.todoService.MarkFinished(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, todo)
}

func (h *Handler) DeleteTodo(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.todoService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

func (h *Handler) ClassifyTodo(c echo.Context) error {
	var req dto.ClassifyRequest
	if err := c.Bind(&req); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&req); err != nil {
		return httpError(err)
	}

	category := h.todoService.Classify(c.Request().Context(), req.Title)
	return c.JSON(http.StatusOK, dto.ClassifyResponse{
		Category: string(category),
		Title:    req.Title,
	})
}
