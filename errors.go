package cubesolve

import "errors"

// Sentinel errors for the cubesolve package.
var (
	// Parsing errors
	ErrInvalidFormat   = errors.New("cubesolve: invalid cube description")
	ErrInvalidNotation = errors.New("cubesolve: invalid move notation")
)
