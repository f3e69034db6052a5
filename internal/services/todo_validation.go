package services

import (
	"context"
	"fmt"
	"strings"

	"todo-service.com/todo-service/internal/constants"
	dto "todo-service.com/todo-service/internal/data_models"
	apperrors "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
)

func validateTitle(title *string) error {
	if title == nil || strings.TrimSpace(*title) == "" {
		return apperrors.Invalid("title", "must not be blank")
	}
	return nil
}

func parsePriority(raw *string) (constants.Priority, error) {
	if raw == nil {
		return "", apperrors.Invalid("priority", "is required")
	}
	p, ok := constants.ParsePriority(*raw)
	if !ok {
		return "", apperrors.Invalid("priority", "must be one of LOW, MEDIUM, HIGH")
	}
	return p, nil
}

func parseCategory(raw string) (constants.Category, error) {
	c, ok := constants.ParseCategory(raw)
	if !ok {
		return "", apperrors.Invalid("category", "must be one of work, private, general")
	}
	return c, nil
}

// parseDueDate requires a YYYY-MM-DD date strictly after today.
func parseDueDate(raw *string, today model.Date) (model.Date, error) {
	if raw == nil {
		return model.Date{}, apperrors.Invalid("dueDate", "is required")
	}
	due, err := model.ParseDate(*raw)
	if err != nil {
		return model.Date{}, apperrors.Invalid("dueDate", "must be a date in YYYY-MM-DD format")
	}
	if !due.IsAfter(today) {
		return model.Date{}, apperrors.Invalid("dueDate", "must be after today")
	}
	return due, nil
}

// checkAssigneeIDs rejects duplicate ids and ids with no assignee behind them.
func checkAssigneeIDs(ctx context.Context, store *repository.Store, ids []uint) error {
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return apperrors.Invalid("assigneeIdList", "must not contain duplicate ids")
		}
		seen[id] = struct{}{}
	}

	for _, id := range ids {
		exists, err := store.Assignees.ExistsByID(ctx, id)
		if err != nil {
			return fmt.Errorf("check assignee %d: %w", id, err)
		}
		if !exists {
			return apperrors.Invalid("assigneeIdList", fmt.Sprintf("assignee %d does not exist", id))
		}
	}
	return nil
}

// resolveAssignees loads the records behind ids. Repeated ids are collapsed so
// a todo never holds the same assignee twice.
func resolveAssignees(ctx context.Context, store *repository.Store, ids []uint) ([]model.Assignee, error) {
	out := make([]model.Assignee, 0, len(ids))
	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		a, err := store.Assignees.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

// CheckUpdateRequest is the pre-check the HTTP layer runs before Update. It
// is stricter than Update itself: duplicate and unknown assignee ids and a
// blank title are rejected here.
func (s *TodoService) CheckUpdateRequest(ctx context.Context, p *dto.TodoPayload) error {
	if p.Title != nil {
		if err := validateTitle(p.Title); err != nil {
			return err
		}
	}
	if p.DueDate != nil {
		if _, err := parseDueDate(p.DueDate, s.now.today()); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		if _, err := parsePriority(p.Priority); err != nil {
			return err
		}
	}
	if p.AssigneeIDs != nil {
		if err := checkAssigneeIDs(ctx, s.store, p.AssigneeIDs); err != nil {
			return err
		}
	}
	if p.Category != nil {
		if _, err := parseCategory(*p.Category); err != nil {
			return err
		}
	}
	return nil
}

func (s *TodoService) ValidateUpdateRequest(ctx context.Context, p *dto.TodoPayload) bool {
	return s.CheckUpdateRequest(ctx, p) == nil
}
