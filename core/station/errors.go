package station

import "errors"

var (
	// ErrInvalidSelection is returned when the chosen index is outside the
	// listing or nothing is available.
	ErrInvalidSelection = errors.New("invalid timeslot selection")
	// ErrDeclinedConfirmation is returned when the booking was not confirmed.
	ErrDeclinedConfirmation = errors.New("booking not confirmed")
	// ErrPersistenceFailure is returned alongside a successful booking whose
	// state could not be saved. The booking stays applied in memory.
	ErrPersistenceFailure = errors.New("station state not persisted")
)
