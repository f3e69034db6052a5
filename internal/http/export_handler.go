package http

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-service.com/todo-service/internal/export"
)

const csvFileName = "todos.csv"

func (h *Handler) DownloadTodosCSV(c echo.Context) error {
	todos, err := h.todoService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	var buf bytes.Buffer
	if err := export.WriteTodos(&buf, todos); err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+csvFileName+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=UTF-8", buf.Bytes())
}
