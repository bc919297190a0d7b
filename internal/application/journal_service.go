package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

var (
	ErrJournalEmpty    = errors.New("journal entry is empty")
	ErrJournalNotFound = errors.New("journal entry not found")
)

type JournalService struct {
	Repo   repository.JournalRepository
	Logger *logrus.Logger
}

func NewJournalService(repo repository.JournalRepository, logger *logrus.Logger) *JournalService {
	return &JournalService{Repo: repo, Logger: logger}
}

func (s *JournalService) Write(ctx context.Context, userID, content string) (*entity.Journal, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrJournalEmpty
	}
	j := &entity.Journal{UserID: userID, Content: content}
	if err := s.Repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *JournalService) List(ctx context.Context, userID string) ([]*entity.Journal, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// Delete removes an entry. Entries owned by other users look like missing
// ones.
func (s *JournalService) Delete(ctx context.Context, userID, journalID string) error {
	if err := s.Repo.Delete(ctx, userID, journalID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrJournalNotFound
		}
		return err
	}
	return nil
}
