package repository

import (
	"context"
	"time"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
)

// MoodRepository defines persistence for mood check-ins.
type MoodRepository interface {
	Create(ctx context.Context, m *entity.MoodLog) error
	ListByUser(ctx context.Context, userID string) ([]*entity.MoodLog, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]*entity.MoodLog, error)

	// Trend returns per-day mood averages since the given instant,
	// oldest day first.
	Trend(ctx context.Context, userID string, since time.Time) ([]*entity.MoodTrendPoint, error)

	// WeeklyStats aggregates mood, energy and stress averages since the
	// given instant.
	WeeklyStats(ctx context.Context, userID string, since time.Time) (*entity.WeeklyStats, error)
}

// StressRepository defines persistence for stress assessments.
type StressRepository interface {
	Create(ctx context.Context, a *entity.StressAssessment) error
	ListByUser(ctx context.Context, userID string) ([]*entity.StressAssessment, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]*entity.StressAssessment, error)
}

// JournalRepository defines persistence for journal entries.
type JournalRepository interface {
	Create(ctx context.Context, j *entity.Journal) error
	ListByUser(ctx context.Context, userID string) ([]*entity.Journal, error)
	Delete(ctx context.Context, userID, journalID string) error
}
