package repository

import (
	"context"
	"time"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
)

// HabitRepository defines persistence for habits and their completion
// history. All lookups are scoped to the owning user; a habit another
// user owns behaves exactly like a missing one.
type HabitRepository interface {
	Create(ctx context.Context, h *entity.Habit) error
	GetByID(ctx context.Context, userID, habitID string) (*entity.Habit, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Habit, error)
	Delete(ctx context.Context, userID, habitID string) error

	// AppendCompletion appends completedAt and stores the recomputed
	// streak in one conditional write: the update only applies while the
	// habit still has expectedCompletions entries. A concurrent toggle
	// that got there first makes the condition fail, and ErrConflict is
	// returned so the caller never double-counts a day.
	AppendCompletion(ctx context.Context, userID, habitID string, expectedCompletions int, completedAt time.Time, streak int) (*entity.Habit, error)
}
