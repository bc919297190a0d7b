package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

var (
	// ErrHabitNotFound covers both a missing habit and one owned by
	// another user; callers must not be able to tell the difference.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrAlreadyCompletedToday rejects a second toggle on the same
	// calendar day. It is a business outcome, not a failure.
	ErrAlreadyCompletedToday = errors.New("habit already completed today")

	// ErrToggleConflict means a concurrent toggle won the conditional
	// write; the habit state must be re-read.
	ErrToggleConflict = errors.New("habit was modified concurrently")
)

const (
	defaultHabitIcon  = "🎯"
	defaultHabitColor = "blue"
	defaultLatestN    = 3
)

type HabitService struct {
	Repo   repository.HabitRepository
	Logger *logrus.Logger
}

func NewHabitService(repo repository.HabitRepository, logger *logrus.Logger) *HabitService {
	return &HabitService{Repo: repo, Logger: logger}
}

type CreateHabitInput struct {
	Name  string
	Icon  string
	Color string
}

func (s *HabitService) Create(ctx context.Context, userID string, in CreateHabitInput) (*entity.Habit, error) {
	h := &entity.Habit{
		UserID:      userID,
		Name:        in.Name,
		Icon:        in.Icon,
		Color:       in.Color,
		Streak:      0,
		Completions: []time.Time{},
	}
	if h.Icon == "" {
		h.Icon = defaultHabitIcon
	}
	if h.Color == "" {
		h.Color = defaultHabitColor
	}
	if err := s.Repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *HabitService) List(ctx context.Context, userID string) ([]*entity.Habit, error) {
	return s.Repo.ListByUser(ctx, userID, 0)
}

// Latest returns the most recently created habits for the dashboard.
func (s *HabitService) Latest(ctx context.Context, userID string, limit int) ([]*entity.Habit, error) {
	if limit <= 0 {
		limit = defaultLatestN
	}
	return s.Repo.ListByUser(ctx, userID, limit)
}

func (s *HabitService) Delete(ctx context.Context, userID, habitID string) error {
	if err := s.Repo.Delete(ctx, userID, habitID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrHabitNotFound
		}
		return err
	}
	return nil
}

// ToggleCompletion records a completion for the calendar day of now.
//
// Per habit and per day this is a one-way transition: once completed, the
// only way back is the next day arriving. A same-day repeat returns
// ErrAlreadyCompletedToday with no mutation, so double-clicks never
// double-count. The persisted streak is always recomputed from the full
// completion history, never incremented in place.
func (s *HabitService) ToggleCompletion(ctx context.Context, userID, habitID string, now time.Time) (*entity.Habit, error) {
	h, err := s.Repo.GetByID(ctx, userID, habitID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHabitNotFound
		}
		return nil, err
	}

	for _, c := range h.Completions {
		if SameDay(c, now) {
			return nil, ErrAlreadyCompletedToday
		}
	}

	next := make([]time.Time, 0, len(h.Completions)+1)
	next = append(next, h.Completions...)
	next = append(next, now)
	streak := ComputeStreak(next)

	updated, err := s.Repo.AppendCompletion(ctx, userID, habitID, len(h.Completions), now, streak)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			if s.Logger != nil {
				s.Logger.WithFields(logrus.Fields{
					"habit_id": habitID,
					"user_id":  userID,
				}).Warn("habit toggle lost conditional write")
			}
			return nil, ErrToggleConflict
		}
		return nil, err
	}
	return updated, nil
}
