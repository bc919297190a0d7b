package application

import (
	"sort"
	"time"
)

// SameDay reports whether a and b fall on the same local calendar day.
// Day boundaries follow calendar fields, not a rolling 24-hour window, so
// 23:59 and 00:01 around midnight are different days even though they are
// two minutes apart.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ComputeStreak returns the length of the consecutive-day streak anchored
// at the most recent completion. The most recent entry always counts as 1;
// each earlier entry extends the streak only while the elapsed time to the
// next newer entry floors to exactly one day.
//
// The gap is measured by elapsed time, not calendar-day subtraction: a
// completion late on one day followed by one shortly after the next
// midnight is a zero-day gap and ends the scan. Month and year boundaries
// need no special handling under this rule.
func ComputeStreak(completions []time.Time) int {
	if len(completions) == 0 {
		return 0
	}

	// Collapse entries sharing a calendar day, keeping the latest instant.
	// The completion service never persists two entries for one day, but
	// the streak must stay correct even if it did.
	byDay := make(map[string]time.Time, len(completions))
	for _, c := range completions {
		key := c.Format("2006-01-02")
		if prev, ok := byDay[key]; !ok || c.After(prev) {
			byDay[key] = c
		}
	}
	days := make([]time.Time, 0, len(byDay))
	for _, t := range byDay {
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 1
	for i := 0; i < len(days)-1; i++ {
		gap := days[i].Sub(days[i+1]) / (24 * time.Hour)
		if gap != 1 {
			break
		}
		streak++
	}
	return streak
}
