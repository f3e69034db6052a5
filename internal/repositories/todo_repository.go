package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
)

const assigneesAssociation = "Assignees"

type TodoRepository struct {
	db *gorm.DB
}

func NewTodoRepository(db *gorm.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) withAssignees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload(assigneesAssociation, func(db *gorm.DB) *gorm.DB {
		return db.Order("assignees.id asc")
	})
}

// Create inserts the todo and its join rows. Referenced assignees must
// already exist; they are linked, never upserted.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	return r.db.WithContext(ctx).Omit(assigneesAssociation + ".*").Create(todo).Error
}

func (r *TodoRepository) FindByID(ctx context.Context, id uint) (*model.Todo, error) {
	var todo model.Todo
	err := r.withAssignees(ctx).First(&todo, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(apperrors.EntityTodo, id)
	}
	if err != nil {
		return nil, err
	}
	withEmptyAssignees(&todo)
	return &todo, nil
}

func (r *TodoRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Todo{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List is a full scan in storage order.
func (r *TodoRepository) List(ctx context.Context) ([]model.Todo, error) {
	var todos []model.Todo
	if err := r.withAssignees(ctx).Order("todos.id asc").Find(&todos).Error; err != nil {
		return nil, err
	}
	if todos == nil {
		return []model.Todo{}, nil
	}
	for i := range todos {
		withEmptyAssignees(&todos[i])
	}
	return todos, nil
}

// withEmptyAssignees makes a todo without assignees encode as [] rather than null.
func withEmptyAssignees(todo *model.Todo) {
	if todo.Assignees == nil {
		todo.Assignees = []model.Assignee{}
	}
}

// Save writes every scalar column and makes the join table match
// todo.Assignees exactly.
func (r *TodoRepository) Save(ctx context.Context, todo *model.Todo) error {
	db := r.db.WithContext(ctx)
	res := db.Model(&model.Todo{}).
		Where("id = ?", todo.ID).
		Updates(map[string]interface{}{
			"title":         todo.Title,
			"description":   todo.Description,
			"priority":      todo.Priority,
			"category":      todo.Category,
			"finished":      todo.Finished,
			"due_date":      todo.DueDate,
			"finished_date": todo.FinishedDate,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(apperrors.EntityTodo, todo.ID)
	}

	association := db.Model(todo).Association(assigneesAssociation)
	if len(todo.Assignees) == 0 {
		return association.Clear()
	}
	return association.Replace(todo.Assignees)
}

// RemoveAssignee drops a single join row, leaving the assignee itself alone.
func (r *TodoRepository) RemoveAssignee(ctx context.Context, todo *model.Todo, assignee *model.Assignee) error {
	return r.db.WithContext(ctx).Model(todo).Association(assigneesAssociation).Delete(assignee)
}

func (r *TodoRepository) Delete(ctx context.Context, id uint) error {
	todo := &model.Todo{ID: id}
	db := r.db.WithContext(ctx)
	if err := db.Model(todo).Association(assigneesAssociation).Clear(); err != nil {
		return err
	}

	res := db.Delete(&model.Todo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(apperrors.EntityTodo, id)
	}
	return nil
}
