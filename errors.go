package cubedrag

import "errors"

// Sentinel errors for the cubedrag package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("cubedrag: invalid move notation")

	// State errors
	ErrInvalidMove  = errors.New("cubedrag: invalid move descriptor")
	ErrCorruptState = errors.New("cubedrag: corruption detected in cube state")

	// Scramble errors
	ErrScrambleLength = errors.New("cubedrag: scramble length must be positive")
)
