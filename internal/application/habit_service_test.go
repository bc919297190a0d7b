package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

// fakeHabitRepo mirrors the conditional-write contract of the Postgres
// implementation: AppendCompletion only applies while the stored
// completion count matches what the caller observed.
type fakeHabitRepo struct {
	habits map[string]*entity.Habit
	nextID int
}

func newFakeHabitRepo() *fakeHabitRepo {
	return &fakeHabitRepo{habits: map[string]*entity.Habit{}}
}

func (f *fakeHabitRepo) Create(_ context.Context, h *entity.Habit) error {
	f.nextID++
	h.ID = string(rune('a' + f.nextID))
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	cp := *h
	f.habits[h.ID] = &cp
	return nil
}

func (f *fakeHabitRepo) GetByID(_ context.Context, userID, habitID string) (*entity.Habit, error) {
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *h
	cp.Completions = append([]time.Time(nil), h.Completions...)
	return &cp, nil
}

func (f *fakeHabitRepo) ListByUser(_ context.Context, userID string, limit int) ([]*entity.Habit, error) {
	out := make([]*entity.Habit, 0)
	for _, h := range f.habits {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeHabitRepo) Delete(_ context.Context, userID, habitID string) error {
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID {
		return repository.ErrNotFound
	}
	delete(f.habits, habitID)
	return nil
}

func (f *fakeHabitRepo) AppendCompletion(_ context.Context, userID, habitID string, expected int, completedAt time.Time, streak int) (*entity.Habit, error) {
	h, ok := f.habits[habitID]
	if !ok || h.UserID != userID || len(h.Completions) != expected {
		return nil, repository.ErrConflict
	}
	h.Completions = append(h.Completions, completedAt)
	h.Streak = streak
	h.UpdatedAt = completedAt
	cp := *h
	cp.Completions = append([]time.Time(nil), h.Completions...)
	return &cp, nil
}

func seedHabit(t *testing.T, svc *HabitService, userID string) *entity.Habit {
	t.Helper()
	h, err := svc.Create(context.Background(), userID, CreateHabitInput{Name: "meditate"})
	require.NoError(t, err)
	return h
}

func TestHabitService_CreateAppliesDefaults(t *testing.T) {
	svc := NewHabitService(newFakeHabitRepo(), nil)

	h, err := svc.Create(context.Background(), "u1", CreateHabitInput{Name: "drink water"})
	require.NoError(t, err)
	assert.Equal(t, "🎯", h.Icon)
	assert.Equal(t, "blue", h.Color)
	assert.Equal(t, 0, h.Streak)
	assert.Empty(t, h.Completions)
}

func TestHabitService_ToggleFirstCompletion(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, nil)
	h := seedHabit(t, svc, "u1")

	now := at(2026, 3, 10, 9, 0)
	updated, err := svc.ToggleCompletion(context.Background(), "u1", h.ID, now)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Streak)
	require.Len(t, updated.Completions, 1)
	assert.True(t, updated.Completions[0].Equal(now))
}

func TestHabitService_SameDayToggleIsRejected(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, nil)
	h := seedHabit(t, svc, "u1")

	ctx := context.Background()
	_, err := svc.ToggleCompletion(ctx, "u1", h.ID, at(2026, 3, 10, 9, 0))
	require.NoError(t, err)

	// Later the same calendar day: rejected, nothing written.
	_, err = svc.ToggleCompletion(ctx, "u1", h.ID, at(2026, 3, 10, 22, 30))
	assert.ErrorIs(t, err, ErrAlreadyCompletedToday)

	stored, err := repo.GetByID(ctx, "u1", h.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Completions, 1)
	assert.Equal(t, 1, stored.Streak)
}

func TestHabitService_ToggleExtendsAndRecomputesStreak(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, nil)
	h := seedHabit(t, svc, "u1")

	ctx := context.Background()
	days := []time.Time{
		at(2026, 3, 10, 9, 0),
		at(2026, 3, 11, 9, 30),
		at(2026, 3, 12, 10, 0),
	}
	var updated *entity.Habit
	var err error
	for _, d := range days {
		updated, err = svc.ToggleCompletion(ctx, "u1", h.ID, d)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, updated.Streak)
	assert.Len(t, updated.Completions, 3)

	// A gap resets to 1; the history is preserved untouched.
	updated, err = svc.ToggleCompletion(ctx, "u1", h.ID, at(2026, 3, 16, 9, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Streak)
	assert.Len(t, updated.Completions, 4)
	for i, d := range days {
		assert.True(t, updated.Completions[i].Equal(d), "existing entries must not be reordered")
	}
}

func TestHabitService_ToggleUnknownOrForeignHabit(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, nil)
	h := seedHabit(t, svc, "u1")

	ctx := context.Background()
	now := at(2026, 3, 10, 9, 0)

	_, err := svc.ToggleCompletion(ctx, "u1", "missing", now)
	assert.ErrorIs(t, err, ErrHabitNotFound)

	// Another user's habit looks exactly like a missing one.
	_, err = svc.ToggleCompletion(ctx, "u2", h.ID, now)
	assert.ErrorIs(t, err, ErrHabitNotFound)
}

func TestHabitService_ConcurrentToggleLosesConditionalWrite(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, nil)
	h := seedHabit(t, svc, "u1")

	ctx := context.Background()
	loaded, err := repo.GetByID(ctx, "u1", h.ID)
	require.NoError(t, err)

	// Simulate a racing toggle landing between our read and write.
	_, err = repo.AppendCompletion(ctx, "u1", h.ID, len(loaded.Completions), at(2026, 3, 10, 9, 0), 1)
	require.NoError(t, err)

	_, err = repo.AppendCompletion(ctx, "u1", h.ID, len(loaded.Completions), at(2026, 3, 10, 9, 1), 1)
	assert.ErrorIs(t, err, repository.ErrConflict)

	stored, err := repo.GetByID(ctx, "u1", h.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Completions, 1, "loser must not double-count the day")
}

func TestHabitService_DeleteScopedToOwner(t *testing.T) {
	repo := newFakeHabitRepo()
	svc := NewHabitService(repo, nil)
	h := seedHabit(t, svc, "u1")

	ctx := context.Background()
	assert.ErrorIs(t, svc.Delete(ctx, "u2", h.ID), ErrHabitNotFound)
	require.NoError(t, svc.Delete(ctx, "u1", h.ID))
	assert.ErrorIs(t, svc.Delete(ctx, "u1", h.ID), ErrHabitNotFound)
}
