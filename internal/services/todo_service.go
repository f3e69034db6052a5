package services

import (
	"context"
	"log"
	"strings"

	"todo-service.com/todo-service/internal/classifier"
	"todo-service.com/todo-service/internal/constants"
	dto "todo-service.com/todo-service/internal/data_models"
	apperrors "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
)

type TodoService struct {
	store      *repository.Store
	classifier classifier.Classifier
	now        Clock
}

func NewTodoService(store *repository.Store, c classifier.Classifier, now Clock) *TodoService {
	if c == nil {
		c = classifier.Fallback{}
	}
	return &TodoService{
		store:      store,
		classifier: c,
		now:        now,
	}
}

func (s *TodoService) Create(ctx context.Context, p *dto.TodoPayload) (*model.Todo, error) {
	today := s.now.today()

	if err := validateTitle(p.Title); err != nil {
		return nil, err
	}
	due, err := parseDueDate(p.DueDate, today)
	if err != nil {
		return nil, err
	}
	priority, err := parsePriority(p.Priority)
	if err != nil {
		return nil, err
	}
	if p.AssigneeIDs != nil {
		if err := checkAssigneeIDs(ctx, s.store, p.AssigneeIDs); err != nil {
			return nil, err
		}
	}

	var category constants.Category
	if p.HasCategory() {
		if category, err = parseCategory(*p.Category); err != nil {
			return nil, err
		}
	} else {
		category = s.classifier.Classify(ctx, *p.Title)
		log.Printf("derived category %s for %q", category, *p.Title)
	}

	todo := &model.Todo{
		Title:       *p.Title,
		Priority:    priority,
		Category:    category,
		CreatedDate: today,
		DueDate:     due,
	}
	if p.Description != nil {
		todo.Description = *p.Description
	}
	if p.Finished != nil {
		todo.SetFinished(*p.Finished, today)
	}

	err = s.store.Transaction(ctx, func(tx *repository.Store) error {
		assignees, err := resolveAssignees(ctx, tx, p.AssigneeIDs)
		if err != nil {
			return err
		}
		todo.Assignees = assignees
		return tx.Todos.Create(ctx, todo)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("todo %d created with category %s", todo.ID, todo.Category)
	return todo, nil
}

func (s *TodoService) Get(ctx context.Context, id uint) (*model.Todo, error) {
	return s.store.Todos.FindByID(ctx, id)
}

func (s *TodoService) List(ctx context.Context) ([]model.Todo, error) {
	return s.store.Todos.List(ctx)
}

func (s *TodoService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.store.Todos.ExistsByID(ctx, id)
}

// Update applies a partial payload: only keys that were sent change. A sent
// but null assigneeIdList clears the assignees.
func (s *TodoService) Update(ctx context.Context, id uint, p *dto.TodoPayload) (*model.Todo, error) {
	var updated *model.Todo
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		todo, err := tx.Todos.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := s.applyUpdate(ctx, tx, todo, p); err != nil {
			return err
		}
		if err := tx.Todos.Save(ctx, todo); err != nil {
			return err
		}
		updated = todo
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("todo %d updated, category %s", updated.ID, updated.Category)
	return updated, nil
}

func (s *TodoService) applyUpdate(ctx context.Context, tx *repository.Store, todo *model.Todo, p *dto.TodoPayload) error {
	today := s.now.today()

	if p.Title != nil {
		todo.Title = *p.Title
	}
	if p.Description != nil {
		todo.Description = *p.Description
	}
	if p.Priority != nil {
		priority, err := parsePriority(p.Priority)
		if err != nil {
			return err
		}
		todo.Priority = priority
	}
	if p.Finished != nil {
		todo.SetFinished(*p.Finished, today)
	}
	if p.DueDate != nil {
		due, err := parseDueDate(p.DueDate, today)
		if err != nil {
			return err
		}
		todo.DueDate = due
	}

	if p.HasAssigneeIDs {
		assignees, err := resolveAssignees(ctx, tx, p.AssigneeIDs)
		if err != nil {
			return err
		}
		todo.Assignees = assignees
	}

	switch {
	case p.HasCategory():
		category, err := parseCategory(*p.Category)
		if err != nil {
			return err
		}
		todo.Category = category
	case p.Title != nil:
		todo.Category = s.classifier.Classify(ctx, *p.Title)
	case p.Category != nil:
		return apperrors.Invalid("category", "must not be blank")
	}
	return nil
}

// MarkFinished finishes the todo and stamps today, even if it was already
// finished earlier.
func (s *TodoService) MarkFinished(ctx context.Context, id uint) (*model.Todo, error) {
	var finished *model.Todo
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		todo, err := tx.Todos.FindByID(ctx, id)
		if err != nil {
			return err
		}
		todo.MarkFinished(s.now.today())
		if err := tx.Todos.Save(ctx, todo); err != nil {
			return err
		}
		finished = todo
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("todo %d marked finished on %s", finished.ID, finished.FinishedDate)
	return finished, nil
}

func (s *TodoService) Delete(ctx context.Context, id uint) error {
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		return tx.Todos.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	log.Printf("todo %d deleted", id)
	return nil
}

// Classify is the standalone classification used by the classify endpoint.
func (s *TodoService) Classify(ctx context.Context, title string) constants.Category {
	if strings.TrimSpace(title) == "" {
		return constants.CategoryGeneral
	}
	return s.classifier.Classify(ctx, title)
}
