package wizard

import (
	"context"

	"github.com/jonathan/onboarding-wizard/internal/payload"
	"github.com/jonathan/onboarding-wizard/internal/steps"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

// Receipt acknowledges a successful submission.
type Receipt struct {
	ID string
}

// Sink accepts a completed submission. The controller depends only on the
// success or failure of the call, not on how the sink stores data.
type Sink interface {
	Submit(ctx context.Context, sub *payload.Submission) (*Receipt, error)
}

// Controller is the wizard's finite state machine: step indexes 1..5 plus a
// terminal Submitted state. Forward transitions are gated by step-scoped
// validation; backward transitions are unconditional. It is not safe for
// concurrent use; a session owns exactly one controller.
type Controller struct {
	sink Sink

	form       *types.FormState
	step       int
	submitting bool
	submitted  bool
	dirty      bool
}

// NewController returns a controller at step 1 with default form values.
func NewController(sink Sink) *Controller {
	return &Controller{
		sink: sink,
		form: types.DefaultFormState(),
		step: steps.First,
	}
}

// Step returns the current step index. It is meaningless once Submitted
// reports true.
func (c *Controller) Step() int { return c.step }

// Submitted reports whether the terminal state has been reached.
func (c *Controller) Submitted() bool { return c.submitted }

// Submitting reports whether a submission is in flight; navigation is
// rejected while true.
func (c *Controller) Submitting() bool { return c.submitting }

// Dirty reports whether the form has been edited since the session started
// or last restarted. Embedding UIs use this for leave-page guards.
func (c *Controller) Dirty() bool { return c.dirty }

// Form returns a snapshot of the current form state.
func (c *Controller) Form() *types.FormState {
	return c.form.Clone()
}

// Update applies an edit to the form state and marks the session dirty.
// Edits are rejected while a submission is in flight.
func (c *Controller) Update(mutate func(*types.FormState)) error {
	if c.submitting {
		return ErrSubmitting
	}
	mutate(c.form)
	c.dirty = true
	return nil
}

// Next validates the current step and advances on success. On failure the
// controller stays put and the blocking issues are returned.
func (c *Controller) Next() (types.Issues, error) {
	if c.submitting {
		return nil, ErrSubmitting
	}
	if c.submitted {
		return nil, ErrAlreadySubmitted
	}
	issues := ValidateStep(c.form, c.step)
	if len(issues) > 0 {
		return issues, nil
	}
	if c.step < steps.Last {
		c.step++
	}
	return nil, nil
}

// Prev moves back one step without validation.
func (c *Controller) Prev() error {
	if c.submitting {
		return ErrSubmitting
	}
	if c.submitted {
		return ErrAlreadySubmitted
	}
	if c.step > steps.First {
		c.step--
	}
	return nil
}

// Submit runs full-form validation and, if clean, hands the transformed
// payload to the sink. Blocking issues are returned without an error. A sink
// failure is returned as a *SubmissionError with the form preserved so the
// user can retry; success moves the controller to the terminal Submitted
// state.
func (c *Controller) Submit(ctx context.Context) (*Receipt, types.Issues, error) {
	if c.submitting {
		return nil, nil, ErrSubmitting
	}
	if c.submitted {
		return nil, nil, ErrAlreadySubmitted
	}
	if c.step != steps.Last {
		return nil, nil, ErrNotAtReview
	}

	issues := ValidateAll(c.form)
	if len(issues) > 0 {
		return nil, issues, nil
	}

	sub, err := payload.Build(c.form)
	if err != nil {
		return nil, nil, &SubmissionError{Cause: err}
	}

	c.submitting = true
	receipt, err := c.sink.Submit(ctx, sub)
	c.submitting = false
	if err != nil {
		return nil, nil, &SubmissionError{Cause: err}
	}

	c.submitted = true
	c.dirty = false
	return receipt, nil, nil
}

// Restart clears the form and returns to step 1. Only valid from the
// terminal Submitted state.
func (c *Controller) Restart() error {
	if !c.submitted {
		return ErrNotSubmitted
	}
	c.form = types.DefaultFormState()
	c.step = steps.First
	c.submitted = false
	c.dirty = false
	return nil
}
