package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

var ErrMoodOutOfRange = errors.New("mood values out of range")

type MoodService struct {
	Repo   repository.MoodRepository
	Logger *logrus.Logger
}

func NewMoodService(repo repository.MoodRepository, logger *logrus.Logger) *MoodService {
	return &MoodService{Repo: repo, Logger: logger}
}

type LogMoodInput struct {
	Mood   int
	Energy int
	Stress int
}

// LogMood records one mood check-in. Mood is 1..5; energy and stress are
// 0..5 with 0 meaning "not reported".
func (s *MoodService) LogMood(ctx context.Context, userID string, in LogMoodInput) (*entity.MoodLog, error) {
	if in.Mood < 1 || in.Mood > 5 || in.Energy < 0 || in.Energy > 5 || in.Stress < 0 || in.Stress > 5 {
		return nil, ErrMoodOutOfRange
	}
	m := &entity.MoodLog{
		UserID:   userID,
		Mood:     in.Mood,
		Energy:   in.Energy,
		Stress:   in.Stress,
		LoggedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MoodService) List(ctx context.Context, userID string) ([]*entity.MoodLog, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Trend returns per-day mood averages over the last `days` days, oldest
// first, suitable for charting.
func (s *MoodService) Trend(ctx context.Context, userID string, days int) ([]*entity.MoodTrendPoint, error) {
	if days <= 0 || days > 90 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.Repo.Trend(ctx, userID, since)
}

func (s *MoodService) WeeklyStats(ctx context.Context, userID string) (*entity.WeeklyStats, error) {
	since := time.Now().AddDate(0, 0, -7)
	return s.Repo.WeeklyStats(ctx, userID, since)
}
