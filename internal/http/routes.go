package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	middleware "todo-service.com/todo-service/internal/http/middlewares"
	"todo-service.com/todo-service/internal/http/validators"
)

type RouteOptions struct {
	RateLimitPerMinute int
	AllowOrigins       []string
}

func Register(e *echo.Echo, h *Handler, opts RouteOptions) {
	e.Validator = validators.New()

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.AllowOrigins,
	}))
	if opts.RateLimitPerMinute > 0 {
		e.Use(middleware.RateLimiter(opts.RateLimitPerMinute, time.Minute))
	}

	api := e.Group("/api/v1")

	todos := api.Group("/todos")
	todos.GET("", h.ListTodos)
	todos.POST("", h.CreateTodo)
	todos.POST("/classify", h.ClassifyTodo)
	todos.GET("/:id", h.GetTodo)
	todos.PUT("/:id", h.UpdateTodo)
	todos.PUT("/:id/finish", h.FinishTodo)
	todos.DELETE("/:id", h.DeleteTodo)

	assignees := api.Group("/assignees")
	assignees.GET("", h.ListAssignees)
	assignees.POST("", h.CreateAssignee)
	assignees.GET("/:id", h.GetAssignee)
	assignees.PUT("/:id", h.UpdateAssignee)
	assignees.DELETE("/:id", h.DeleteAssignee)

	api.GET("/csv-downloads/todos", h.DownloadTodosCSV)
}
