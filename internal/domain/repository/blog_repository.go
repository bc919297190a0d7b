package repository

import (
	"context"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
)

// BlogRepository defines persistence for published articles.
type BlogRepository interface {
	Create(ctx context.Context, b *entity.Blog) error
	GetByID(ctx context.Context, id string) (*entity.Blog, error)
	List(ctx context.Context) ([]*entity.Blog, error)
	Update(ctx context.Context, b *entity.Blog) error
	Delete(ctx context.Context, id string) error
}
