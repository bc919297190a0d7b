package repository

import (
	"context"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
)

// UserRepository defines persistence for accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error

	// PurgeData removes all wellness data (habits, moods, stress
	// assessments, journals) owned by the user, keeping the account.
	PurgeData(ctx context.Context, userID string) error

	// Delete removes the account together with all owned data.
	Delete(ctx context.Context, userID string) error
}
