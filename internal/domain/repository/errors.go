package repository

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist or is not
	// owned by the requesting user. Repositories never distinguish the
	// two cases, so the existence of other users' data is not leaked.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a conditional write lost a race with
	// a concurrent mutation of the same entity.
	ErrConflict = errors.New("conflict")
)
