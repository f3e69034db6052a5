package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Invalid("title", "must not be blank"), http.StatusBadRequest},
		{"not found", NotFound(EntityTodo, 7), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load: %w", NotFound(EntityAssignee, 3)), http.StatusNotFound},
		{"exception", ErrInvalidJSON, http.StatusBadRequest},
		{"plain", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}

func TestKindHelpers(t *testing.T) {
	nf := fmt.Errorf("update: %w", NotFound(EntityAssignee, 12))
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))
	assert.Equal(t, "update: assignee 12 not found", nf.Error())

	v := Invalid("dueDate", "must be after today")
	assert.True(t, IsValidation(v))
	assert.False(t, IsNotFound(v))
	assert.Equal(t, "dueDate: must be after today", v.Error())
}
