package model

import (
	"todo-service.com/todo-service/internal/constants"
)

type Todo struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	Title        string             `gorm:"not null" json:"title"`
	Description  string             `json:"description"`
	Priority     constants.Priority `gorm:"type:varchar(10);not null" json:"priority"`
	Category     constants.Category `gorm:"type:varchar(10);not null" json:"category"`
	Finished     bool               `gorm:"not null" json:"finished"`
	CreatedDate  Date               `gorm:"not null" json:"createdDate"`
	DueDate      Date               `gorm:"not null" json:"dueDate"`
	FinishedDate *Date              `json:"finishedDate"`
	Assignees    []Assignee         `gorm:"many2many:todo_assignee;" json:"assigneeList"`
}

// SetFinished keeps Finished and FinishedDate in step: finishing an
// unfinished todo stamps today, unfinishing always clears the date.
func (t *Todo) SetFinished(finished bool, today Date) {
	if !finished {
		t.Finished = false
		t.FinishedDate = nil
		return
	}
	if !t.Finished || t.FinishedDate == nil {
		t.FinishedDate = &today
	}
	t.Finished = true
}

// MarkFinished re-stamps the finished date on every call.
func (t *Todo) MarkFinished(today Date) {
	t.Finished = true
	t.FinishedDate = &today
}

func (t *Todo) HasAssignee(id uint) bool {
	for _, a := range t.Assignees {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (t *Todo) RemoveAssignee(id uint) bool {
	kept := t.Assignees[:0]
	removed := false
	for _, a := range t.Assignees {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	t.Assignees = kept
	return removed
}
