package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "todo-service.com/todo-service/internal/errors"
	model "todo-service.com/todo-service/internal/models"
)

type AssigneeRepository struct {
	db *gorm.DB
}

func NewAssigneeRepository(db *gorm.DB) *AssigneeRepository {
	return &AssigneeRepository{db: db}
}

func (r *AssigneeRepository) Create(ctx context.Context, assignee *model.Assignee) error {
	return r.db.WithContext(ctx).Create(assignee).Error
}

func (r *AssigneeRepository) FindByID(ctx context.Context, id uint) (*model.Assignee, error) {
	var assignee model.Assignee
	err := r.db.WithContext(ctx).First(&assignee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound(apperrors.EntityAssignee, id)
	}
	if err != nil {
		return nil, err
	}
	return &assignee, nil
}

func (r *AssigneeRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Assignee{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *AssigneeRepository) List(ctx context.Context) ([]model.Assignee, error) {
	assignees := []model.Assignee{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&assignees).Error; err != nil {
		return nil, err
	}
	return assignees, nil
}

// Save replaces name, prename and email of an existing row.
func (r *AssigneeRepository) Save(ctx context.Context, assignee *model.Assignee) error {
	res := r.db.WithContext(ctx).Model(&model.Assignee{}).
		Where("id = ?", assignee.ID).
		Updates(map[string]interface{}{
			"name":    assignee.Name,
			"prename": assignee.Prename,
			"email":   assignee.Email,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(apperrors.EntityAssignee, assignee.ID)
	}
	return nil
}

func (r *AssigneeRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Assignee{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(apperrors.EntityAssignee, id)
	}
	return nil
}
