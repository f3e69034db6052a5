package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one database handle so a unit of
// work spanning both tables can run in a single transaction.
type Store struct {
	db        *gorm.DB
	Todos     *TodoRepository
	Assignees *AssigneeRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:        db,
		Todos:     NewTodoRepository(db),
		Assignees: NewAssigneeRepository(db),
	}
}

// Transaction runs fn against a Store bound to one transaction. Returning an
// error from fn rolls everything back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
