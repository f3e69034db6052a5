package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "todo-service.com/todo-service/internal/errors"
	"todo-service.com/todo-service/internal/services"
)

type Handler struct {
	todoService     *services.TodoService
	assigneeService *services.AssigneeService
}

func NewHandler(todoService *services.TodoService, assigneeService *services.AssigneeService) *Handler {
	return &Handler{
		todoService:     todoService,
		assigneeService: assigneeService,
	}
}

// httpError turns a service error into the response echo should send.
// Internal failures are logged and reported without detail.
func httpError(err error) error {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("request failed: %v", err)
		return echo.NewHTTPError(status, "internal server error")
	}
	return echo.NewHTTPError(status, err.Error())
}

// bindError keeps field-level messages raised while decoding a payload.
func bindError(err error) error {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, verr.Error())
	}
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(apperrors.ErrInvalidID.StatusCode, apperrors.ErrInvalidID.Message)
	}
	return uint(id), nil
}
