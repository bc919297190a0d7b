package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

const habitColumns = `id, user_id, name, icon, color, streak, completions, created_at, updated_at`

type HabitRepository struct {
	pool *pgxpool.Pool
}

func NewHabitRepository(pool *pgxpool.Pool) *HabitRepository {
	return &HabitRepository{pool: pool}
}

func (r *HabitRepository) Create(ctx context.Context, h *entity.Habit) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO habits (user_id, name, icon, color, streak, completions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, h.UserID, h.Name, h.Icon, h.Color, h.Streak, h.Completions)

	return row.Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt)
}

func (r *HabitRepository) GetByID(ctx context.Context, userID, habitID string) (*entity.Habit, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+habitColumns+`
		FROM habits
		WHERE id = $1 AND user_id = $2
	`, habitID, userID)

	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return h, nil
}

func (r *HabitRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.Habit, error) {
	q := `
		SELECT ` + habitColumns + `
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at DESC`
	args := []any{userID}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	return habits, rows.Err()
}

func (r *HabitRepository) Delete(ctx context.Context, userID, habitID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM habits WHERE id = $1 AND user_id = $2
	`, habitID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// AppendCompletion is the serialization point for the one-per-day
// invariant: the append only applies while the completion array still has
// the length the caller observed. Two racing toggles both pass the
// in-memory same-day check, but only one matches the cardinality guard;
// the loser gets ErrConflict and no second entry is written.
func (r *HabitRepository) AppendCompletion(ctx context.Context, userID, habitID string, expectedCompletions int, completedAt time.Time, streak int) (*entity.Habit, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE habits
		SET completions = array_append(completions, $4),
		    streak = $5,
		    updated_at = now()
		WHERE id = $1 AND user_id = $2 AND cardinality(completions) = $3
		RETURNING `+habitColumns+`
	`, habitID, userID, expectedCompletions, completedAt, streak)

	h, err := scanHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// The habit either changed under us or was deleted; either
			// way the caller must re-read before retrying.
			return nil, repository.ErrConflict
		}
		return nil, err
	}
	return h, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	h := &entity.Habit{}
	if err := row.Scan(&h.ID, &h.UserID, &h.Name, &h.Icon, &h.Color,
		&h.Streak, &h.Completions, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}
	return h, nil
}

var _ repository.HabitRepository = (*HabitRepository)(nil)
