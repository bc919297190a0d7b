package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

type BlogRepository struct {
	pool *pgxpool.Pool
}

func NewBlogRepository(pool *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{pool: pool}
}

func (r *BlogRepository) Create(ctx context.Context, b *entity.Blog) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO blogs (title, content, image_url, tags, author)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, b.Title, b.Content, b.ImageURL, b.Tags, b.Author)

	return row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.Blog, error) {
	b := &entity.Blog{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, title, content, image_url, tags, author, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`, id)

	if err := row.Scan(&b.ID, &b.Title, &b.Content, &b.ImageURL, &b.Tags,
		&b.Author, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BlogRepository) List(ctx context.Context) ([]*entity.Blog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, image_url, tags, author, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Blog, 0)
	for rows.Next() {
		b := &entity.Blog{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.ImageURL, &b.Tags,
			&b.Author, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BlogRepository) Update(ctx context.Context, b *entity.Blog) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE blogs
		SET title = $2, content = $3, image_url = $4, tags = $5, author = $6, updated_at = now()
		WHERE id = $1
	`, b.ID, b.Title, b.Content, b.ImageURL, b.Tags, b.Author)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.BlogRepository = (*BlogRepository)(nil)
