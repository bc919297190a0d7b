package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

type StressRepository struct {
	pool *pgxpool.Pool
}

func NewStressRepository(pool *pgxpool.Pool) *StressRepository {
	return &StressRepository{pool: pool}
}

func (r *StressRepository) Create(ctx context.Context, a *entity.StressAssessment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO stress_assessments (user_id, stress_level, stress_factors, symptoms, coping_strategies, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, a.UserID, a.StressLevel, a.StressFactors, a.Symptoms, a.CopingStrategies, a.Notes)

	return row.Scan(&a.ID, &a.CreatedAt)
}

func (r *StressRepository) ListByUser(ctx context.Context, userID string) ([]*entity.StressAssessment, error) {
	return r.list(ctx, `
		SELECT id, user_id, stress_level, stress_factors, symptoms, coping_strategies, notes, created_at
		FROM stress_assessments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
}

func (r *StressRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*entity.StressAssessment, error) {
	return r.list(ctx, `
		SELECT id, user_id, stress_level, stress_factors, symptoms, coping_strategies, notes, created_at
		FROM stress_assessments
		WHERE user_id = $1 AND created_at >= $2
		ORDER BY created_at ASC
	`, userID, since)
}

func (r *StressRepository) list(ctx context.Context, q string, args ...any) ([]*entity.StressAssessment, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.StressAssessment, 0)
	for rows.Next() {
		a := &entity.StressAssessment{}
		if err := rows.Scan(&a.ID, &a.UserID, &a.StressLevel, &a.StressFactors,
			&a.Symptoms, &a.CopingStrategies, &a.Notes, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ repository.StressRepository = (*StressRepository)(nil)
