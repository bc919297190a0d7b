package entity

import (
	"time"
)

// Habit is a user-defined recurring action tracked for daily completion.
//
// Completions holds one instant per calendar day the habit was completed;
// the completion service rejects a second toggle on the same local day.
// Streak is a derived cache: it always equals the streak recomputed from
// Completions at the time of the last mutation and is never incremented in
// place.
type Habit struct {
	ID          string
	UserID      string
	Name        string
	Icon        string
	Color       string
	Streak      int
	Completions []time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
