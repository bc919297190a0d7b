package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

type JournalRepository struct {
	pool *pgxpool.Pool
}

func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

func (r *JournalRepository) Create(ctx context.Context, j *entity.Journal) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO journals (user_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, j.UserID, j.Content)

	return row.Scan(&j.ID, &j.CreatedAt)
}

func (r *JournalRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Journal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, content, created_at
		FROM journals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Journal, 0)
	for rows.Next() {
		j := &entity.Journal{}
		if err := rows.Scan(&j.ID, &j.UserID, &j.Content, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JournalRepository) Delete(ctx context.Context, userID, journalID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM journals WHERE id = $1 AND user_id = $2
	`, journalID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.JournalRepository = (*JournalRepository)(nil)
