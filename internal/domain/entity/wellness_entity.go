package entity

import (
	"time"
)

// MoodLog records a single mood check-in. Mood is required (1..5);
// Energy and Stress are optional and zero when not reported.
type MoodLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Mood      int       `json:"mood"`
	Energy    int       `json:"energy"`
	Stress    int       `json:"stress"`
	LoggedAt  time.Time `json:"logged_at"`
	CreatedAt time.Time `json:"created_at"`
}

// StressAssessment captures a guided stress self-assessment.
// StressLevel ranges 0..4.
type StressAssessment struct {
	ID               string    `json:"id"`
	UserID           string    `json:"-"`
	StressLevel      int       `json:"stress_level"`
	StressFactors    []string  `json:"stress_factors"`
	Symptoms         []string  `json:"symptoms"`
	CopingStrategies []string  `json:"coping_strategies"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// Journal is a free-form diary entry.
type Journal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// StressFactorStat is the 7-day aggregation of one stress factor:
// the average reported level when the factor was present and the
// factor's share among all reported factors.
type StressFactorStat struct {
	Factor     string `json:"factor"`
	Level      int    `json:"level"`
	Percentage int    `json:"percentage"`
}

// MoodTrendPoint is one day in the mood trend series.
type MoodTrendPoint struct {
	Day         time.Time `json:"day"`
	AverageMood float64   `json:"average_mood"`
	Entries     int       `json:"entries"`
}

// WeeklyStats aggregates the last seven days of mood logs.
type WeeklyStats struct {
	AverageMood   float64 `json:"average_mood"`
	AverageEnergy float64 `json:"average_energy"`
	AverageStress float64 `json:"average_stress"`
	Entries       int     `json:"entries"`
}
