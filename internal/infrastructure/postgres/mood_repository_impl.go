package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

type MoodRepository struct {
	pool *pgxpool.Pool
}

func NewMoodRepository(pool *pgxpool.Pool) *MoodRepository {
	return &MoodRepository{pool: pool}
}

func (r *MoodRepository) Create(ctx context.Context, m *entity.MoodLog) error {
	if m.LoggedAt.IsZero() {
		m.LoggedAt = time.Now()
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO mood_logs (user_id, mood, energy, stress, logged_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, m.UserID, m.Mood, m.Energy, m.Stress, m.LoggedAt)

	return row.Scan(&m.ID, &m.CreatedAt)
}

func (r *MoodRepository) ListByUser(ctx context.Context, userID string) ([]*entity.MoodLog, error) {
	return r.list(ctx, `
		SELECT id, user_id, mood, energy, stress, logged_at, created_at
		FROM mood_logs
		WHERE user_id = $1
		ORDER BY logged_at DESC
	`, userID)
}

func (r *MoodRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*entity.MoodLog, error) {
	return r.list(ctx, `
		SELECT id, user_id, mood, energy, stress, logged_at, created_at
		FROM mood_logs
		WHERE user_id = $1 AND logged_at >= $2
		ORDER BY logged_at ASC
	`, userID, since)
}

func (r *MoodRepository) list(ctx context.Context, q string, args ...any) ([]*entity.MoodLog, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]*entity.MoodLog, 0)
	for rows.Next() {
		m := &entity.MoodLog{}
		if err := rows.Scan(&m.ID, &m.UserID, &m.Mood, &m.Energy, &m.Stress,
			&m.LoggedAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, m)
	}
	return logs, rows.Err()
}

func (r *MoodRepository) Trend(ctx context.Context, userID string, since time.Time) ([]*entity.MoodTrendPoint, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', logged_at) AS day,
		       avg(mood)::float8,
		       count(*)::int
		FROM mood_logs
		WHERE user_id = $1 AND logged_at >= $2
		GROUP BY day
		ORDER BY day ASC
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]*entity.MoodTrendPoint, 0)
	for rows.Next() {
		p := &entity.MoodTrendPoint{}
		if err := rows.Scan(&p.Day, &p.AverageMood, &p.Entries); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (r *MoodRepository) WeeklyStats(ctx context.Context, userID string, since time.Time) (*entity.WeeklyStats, error) {
	s := &entity.WeeklyStats{}
	row := r.pool.QueryRow(ctx, `
		SELECT coalesce(avg(mood), 0)::float8,
		       coalesce(avg(energy) FILTER (WHERE energy > 0), 0)::float8,
		       coalesce(avg(stress) FILTER (WHERE stress > 0), 0)::float8,
		       count(*)::int
		FROM mood_logs
		WHERE user_id = $1 AND logged_at >= $2
	`, userID, since)
	if err := row.Scan(&s.AverageMood, &s.AverageEnergy, &s.AverageStress, &s.Entries); err != nil {
		if err == pgx.ErrNoRows {
			return s, nil
		}
		return nil, err
	}
	return s, nil
}

var _ repository.MoodRepository = (*MoodRepository)(nil)
