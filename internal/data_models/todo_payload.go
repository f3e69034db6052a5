package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	apperrors "todo-service.com/todo-service/internal/errors"
)

// TodoPayload is the body of a todo create or update request. Pointer
// fields are nil when the key is missing or null. HasAssigneeIDs records
// whether the assigneeIdList key was sent at all, even as null.
type TodoPayload struct {
	Title          *string
	Description    *string
	Priority       *string
	Category       *string
	Finished       *bool
	DueDate        *string
	AssigneeIDs    []uint
	HasAssigneeIDs bool
}

func (p *TodoPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	scalars := []struct {
		key string
		dst any
	}{
		{"title", &p.Title},
		{"description", &p.Description},
		{"priority", &p.Priority},
		{"category", &p.Category},
		{"finished", &p.Finished},
		{"dueDate", &p.DueDate},
	}
	for _, f := range scalars {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, f.dst); err != nil {
			return apperrors.Invalid(f.key, "has the wrong type")
		}
	}

	v, ok := raw["assigneeIdList"]
	if !ok {
		return nil
	}
	p.HasAssigneeIDs = true
	if string(v) == "null" {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(v, &items); err != nil {
		return apperrors.Invalid("assigneeIdList", "must be a list of ids")
	}
	p.AssigneeIDs = make([]uint, 0, len(items))
	for _, item := range items {
		id, err := parseID(item)
		if err != nil {
			return apperrors.Invalid("assigneeIdList", "must contain positive integer ids")
		}
		p.AssigneeIDs = append(p.AssigneeIDs, id)
	}
	return nil
}

// parseID accepts both 3 and "3".
func parseID(raw json.RawMessage) (uint, error) {
	text := string(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		text = s
	}
	id, err := strconv.ParseUint(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// HasCategory reports whether a non-blank category was supplied.
func (p *TodoPayload) HasCategory() bool {
	return p.Category != nil && strings.TrimSpace(*p.Category) != ""
}
