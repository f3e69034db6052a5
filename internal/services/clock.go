package services

import (
	"time"

	model "todo-service.com/todo-service/internal/models"
)

// Clock supplies "now". Services take one so tests can move time.
type Clock func() time.Time

func (c Clock) today() model.Date {
	if c == nil {
		return model.DateOf(time.Now())
	}
	return model.DateOf(c())
}
