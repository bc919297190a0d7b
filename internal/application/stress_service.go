package application

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
	"github.com/tranquilify/tranquilify-api/internal/domain/repository"
)

var ErrStressOutOfRange = errors.New("stress level out of range")

type StressService struct {
	Repo   repository.StressRepository
	Logger *logrus.Logger
}

func NewStressService(repo repository.StressRepository, logger *logrus.Logger) *StressService {
	return &StressService{Repo: repo, Logger: logger}
}

type AssessStressInput struct {
	StressLevel      int
	StressFactors    []string
	Symptoms         []string
	CopingStrategies []string
	Notes            string
}

func (s *StressService) Assess(ctx context.Context, userID string, in AssessStressInput) (*entity.StressAssessment, error) {
	if in.StressLevel < 0 || in.StressLevel > 4 {
		return nil, ErrStressOutOfRange
	}
	a := &entity.StressAssessment{
		UserID:           userID,
		StressLevel:      in.StressLevel,
		StressFactors:    in.StressFactors,
		Symptoms:         in.Symptoms,
		CopingStrategies: in.CopingStrategies,
		Notes:            in.Notes,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *StressService) List(ctx context.Context, userID string) ([]*entity.StressAssessment, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// FactorBreakdown aggregates the last seven days of assessments into
// per-factor stats: the rounded average stress level reported alongside
// the factor and the factor's share of all factor mentions. Factors are
// ordered by share, largest first.
func (s *StressService) FactorBreakdown(ctx context.Context, userID string) ([]entity.StressFactorStat, error) {
	since := time.Now().AddDate(0, 0, -7)
	assessments, err := s.Repo.ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	return AggregateFactors(assessments), nil
}

// AggregateFactors computes per-factor averages and shares from a set of
// assessments.
func AggregateFactors(assessments []*entity.StressAssessment) []entity.StressFactorStat {
	type acc struct {
		sum   int
		count int
	}
	byFactor := make(map[string]*acc)
	total := 0
	for _, a := range assessments {
		for _, f := range a.StressFactors {
			if f == "" {
				continue
			}
			st, ok := byFactor[f]
			if !ok {
				st = &acc{}
				byFactor[f] = st
			}
			st.sum += a.StressLevel
			st.count++
			total++
		}
	}
	if total == 0 {
		return []entity.StressFactorStat{}
	}

	stats := make([]entity.StressFactorStat, 0, len(byFactor))
	for f, st := range byFactor {
		stats = append(stats, entity.StressFactorStat{
			Factor:     f,
			Level:      int(math.Round(float64(st.sum) / float64(st.count))),
			Percentage: int(math.Round(float64(st.count) / float64(total) * 100)),
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Percentage != stats[j].Percentage {
			return stats[i].Percentage > stats[j].Percentage
		}
		return stats[i].Factor < stats[j].Factor
	})
	return stats
}
