package services

import (
	"context"
	"log"
	"regexp"
	"strings"

	dto "todo-service.com/todo-service/internal/data_models"
	apperrors "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
	repository "todo-service.com/todo-service/internal/repositories"
)

const emailLocalChars = "[A-Za-z0-9!#$%&'*+/=?^_`{|}~-]"

// universityEmail accepts dot-separated local parts on uni-stuttgart.de or
// any of its subdomains.
var universityEmail = regexp.MustCompile(
	`(?i)^` + emailLocalChars + `+(?:\.` + emailLocalChars + `+)*` +
		`@(?:[a-z0-9-]+\.)*uni-stuttgart\.de$`,
)

func ValidEmail(email string) bool {
	return universityEmail.MatchString(email)
}

type AssigneeService struct {
	store *repository.Store
}

func NewAssigneeService(store *repository.Store) *AssigneeService {
	return &AssigneeService{store: store}
}

// Validate trims every field in place and rejects missing or blank values
// and addresses outside the university domain.
func (s *AssigneeService) Validate(req *dto.AssigneeRequest) error {
	fields := []struct {
		name  string
		value *string
	}{
		{"name", req.Name},
		{"prename", req.Prename},
		{"email", req.Email},
	}
	for _, f := range fields {
		if f.value == nil {
			return apperrors.Invalid(f.name, "is required")
		}
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return apperrors.Invalid(f.name, "must not be blank")
		}
	}

	if !ValidEmail(*req.Email) {
		return apperrors.Invalid("email", "must be a uni-stuttgart.de address")
	}
	return nil
}

func (s *AssigneeService) Create(ctx context.Context, req *dto.AssigneeRequest) (*model.Assignee, error) {
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	assignee := req.ToModel()
	if err := s.store.Assignees.Create(ctx, &assignee); err != nil {
		return nil, err
	}
	log.Printf("assignee %d created", assignee.ID)
	return &assignee, nil
}

func (s *AssigneeService) Get(ctx context.Context, id uint) (*model.Assignee, error) {
	return s.store.Assignees.FindByID(ctx, id)
}

func (s *AssigneeService) List(ctx context.Context) ([]model.Assignee, error) {
	return s.store.Assignees.List(ctx)
}

func (s *AssigneeService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.store.Assignees.ExistsByID(ctx, id)
}

// Update replaces all fields of assignee id. A missing id is reported before
// the body is looked at.
func (s *AssigneeService) Update(ctx context.Context, id uint, req *dto.AssigneeRequest) (*model.Assignee, error) {
	exists, err := s.store.Assignees.ExistsByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NotFound(apperrors.EntityAssignee, id)
	}
	if err := s.Validate(req); err != nil {
		return nil, err
	}

	assignee := req.ToModel()
	assignee.ID = id
	if err := s.store.Assignees.Save(ctx, &assignee); err != nil {
		return nil, err
	}
	log.Printf("assignee %d updated", id)
	return &assignee, nil
}

// Delete unlinks the assignee from every todo and then removes it, all in
// one transaction.
func (s *AssigneeService) Delete(ctx context.Context, id uint) error {
	unlinked := 0
	err := s.store.Transaction(ctx, func(tx *repository.Store) error {
		assignee, err := tx.Assignees.FindByID(ctx, id)
		if err != nil {
			return err
		}

		todos, err := tx.Todos.List(ctx)
		if err != nil {
			return err
		}
		for i := range todos {
			todo := &todos[i]
			if !todo.RemoveAssignee(id) {
				continue
			}
			if err := tx.Todos.RemoveAssignee(ctx, todo, assignee); err != nil {
				return err
			}
			unlinked++
		}

		return tx.Assignees.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Printf("assignee %d deleted, unlinked from %d todos", id, unlinked)
	return nil
}
