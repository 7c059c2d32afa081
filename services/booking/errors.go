package booking

import "errors"

var (
	// ErrNotLoaded is returned when the session is used before Load.
	ErrNotLoaded = errors.New("store not loaded")

	// ErrEmptyDraft is returned when submitting with nothing selected.
	ErrEmptyDraft = errors.New("no time slots selected")
)
