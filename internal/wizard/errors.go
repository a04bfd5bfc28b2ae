package wizard

import (
	"errors"
	"fmt"
)

// ErrSubmitting indicates navigation was attempted while a submission is in
// flight.
var ErrSubmitting = errors.New("submission in progress")

// ErrNotAtReview indicates Submit was called before reaching the review step.
var ErrNotAtReview = errors.New("submit is only allowed from the review step")

// ErrNotSubmitted indicates Restart was called before a successful submission.
var ErrNotSubmitted = errors.New("restart is only allowed after submission")

// ErrAlreadySubmitted indicates navigation was attempted after the terminal
// Submitted state was reached.
var ErrAlreadySubmitted = errors.New("form already submitted")

// SubmissionError wraps a sink failure. The form state is preserved and the
// controller remains at the review step, so the user may retry.
type SubmissionError struct {
	Cause error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %v", e.Cause)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
