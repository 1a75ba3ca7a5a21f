package invoice

import "errors"

// Store-detected failures surfaced by the repository. Handlers map
// these to HTTP statuses; the repository never retries or corrects.
var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("constraint violation")
)
