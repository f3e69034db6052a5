package dto

import model "todo-service.com/todo-service/internal/models"

// AssigneeRequest is the body of an assignee create or update. Any id sent by
// the client is ignored.
type AssigneeRequest struct {
	ID      uint    `json:"id"`
	Name    *string `json:"name" validate:"required"`
	Prename *string `json:"prename" validate:"required"`
	Email   *string `json:"email" validate:"required,unimail"`
}

func (r *AssigneeRequest) ToModel() model.Assignee {
	var a model.Assignee
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Prename != nil {
		a.Prename = *r.Prename
	}
	if r.Email != nil {
		a.Email = *r.Email
	}
	return a
}
