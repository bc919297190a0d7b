package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tranquilify/tranquilify-api/internal/domain/entity"
)

func TestAggregateFactors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, AggregateFactors(nil))
	})

	t.Run("single factor", func(t *testing.T) {
		stats := AggregateFactors([]*entity.StressAssessment{
			{StressLevel: 3, StressFactors: []string{"work"}},
		})
		assert.Equal(t, []entity.StressFactorStat{
			{Factor: "work", Level: 3, Percentage: 100},
		}, stats)
	})

	t.Run("shares and averages", func(t *testing.T) {
		stats := AggregateFactors([]*entity.StressAssessment{
			{StressLevel: 4, StressFactors: []string{"work", "sleep"}},
			{StressLevel: 2, StressFactors: []string{"work"}},
			{StressLevel: 1, StressFactors: []string{"work"}},
		})
		assert.Len(t, stats, 2)
		assert.Equal(t, "work", stats[0].Factor)
		// (4+2+1)/3 rounds to 2, 3 of 4 mentions is 75%.
		assert.Equal(t, 2, stats[0].Level)
		assert.Equal(t, 75, stats[0].Percentage)
		assert.Equal(t, "sleep", stats[1].Factor)
		assert.Equal(t, 4, stats[1].Level)
		assert.Equal(t, 25, stats[1].Percentage)
	})

	t.Run("ties ordered by factor name", func(t *testing.T) {
		stats := AggregateFactors([]*entity.StressAssessment{
			{StressLevel: 2, StressFactors: []string{"money", "health"}},
		})
		assert.Equal(t, "health", stats[0].Factor)
		assert.Equal(t, "money", stats[1].Factor)
	})

	t.Run("blank factors ignored", func(t *testing.T) {
		stats := AggregateFactors([]*entity.StressAssessment{
			{StressLevel: 3, StressFactors: []string{"", "work"}},
		})
		assert.Len(t, stats, 1)
		assert.Equal(t, 100, stats[0].Percentage)
	})
}
