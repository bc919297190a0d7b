package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", at(2026, 3, 10, 9, 0), at(2026, 3, 10, 9, 0), true},
		{"same day different hours", at(2026, 3, 10, 0, 1), at(2026, 3, 10, 23, 59), true},
		{"two minutes across midnight", at(2026, 3, 10, 23, 59), at(2026, 3, 11, 0, 1), false},
		{"same day-of-month different month", at(2026, 3, 10, 12, 0), at(2026, 4, 10, 12, 0), false},
		{"same day-of-month different year", at(2025, 3, 10, 12, 0), at(2026, 3, 10, 12, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SameDay(tt.a, tt.b))
			assert.Equal(t, tt.want, SameDay(tt.b, tt.a))
		})
	}
}

func TestComputeStreak(t *testing.T) {
	tests := []struct {
		name        string
		completions []time.Time
		want        int
	}{
		{
			name:        "empty history",
			completions: nil,
			want:        0,
		},
		{
			name:        "single completion",
			completions: []time.Time{at(2026, 3, 10, 9, 0)},
			want:        1,
		},
		{
			name: "two consecutive days",
			completions: []time.Time{
				at(2026, 3, 10, 9, 0),
				at(2026, 3, 11, 9, 30),
			},
			want: 2,
		},
		{
			name: "three day chain with roughly one-day gaps",
			completions: []time.Time{
				at(2026, 3, 10, 9, 0),
				at(2026, 3, 11, 9, 30),
				at(2026, 3, 12, 10, 0),
			},
			want: 3,
		},
		{
			name: "gap of three days keeps only the newest entry",
			completions: []time.Time{
				at(2026, 3, 10, 9, 0),
				at(2026, 3, 13, 9, 0),
			},
			want: 1,
		},
		{
			name: "gap breaks mid-chain and older entries are ignored",
			completions: []time.Time{
				at(2026, 3, 5, 8, 0),
				at(2026, 3, 6, 8, 0),
				at(2026, 3, 9, 8, 0),
				at(2026, 3, 10, 8, 0),
			},
			want: 2,
		},
		{
			name: "insertion order is irrelevant",
			completions: []time.Time{
				at(2026, 3, 12, 10, 0),
				at(2026, 3, 10, 9, 0),
				at(2026, 3, 11, 9, 30),
			},
			want: 3,
		},
		{
			name: "month boundary",
			completions: []time.Time{
				at(2026, 1, 31, 9, 0),
				at(2026, 2, 1, 9, 30),
			},
			want: 2,
		},
		{
			name: "year boundary",
			completions: []time.Time{
				at(2025, 12, 31, 20, 0),
				at(2026, 1, 1, 21, 0),
			},
			want: 2,
		},
		{
			// Gaps are measured by elapsed time, not calendar fields:
			// two minutes across midnight floors to a zero-day gap, so
			// the older entry does not extend the streak.
			name: "consecutive calendar days two minutes apart do not chain",
			completions: []time.Time{
				at(2026, 3, 10, 23, 59),
				at(2026, 3, 11, 0, 1),
			},
			want: 1,
		},
		{
			// Almost 48h elapsed still floors to 1 while the entries sit
			// on adjacent calendar days stretched to extremes.
			name: "stretched adjacent days still chain",
			completions: []time.Time{
				at(2026, 3, 10, 0, 30),
				at(2026, 3, 11, 23, 30),
			},
			want: 2,
		},
		{
			name: "duplicate day entries collapse before scanning",
			completions: []time.Time{
				at(2026, 3, 10, 8, 0),
				at(2026, 3, 10, 9, 0),
				at(2026, 3, 11, 9, 0),
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(tt.completions))
		})
	}
}
