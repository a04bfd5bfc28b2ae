package wizard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/onboarding-wizard/internal/payload"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

// fakeSink records submissions and can be primed to fail.
type fakeSink struct {
	err      error
	received []*payload.Submission
	onSubmit func()
}

func (f *fakeSink) Submit(_ context.Context, sub *payload.Submission) (*Receipt, error) {
	if f.onSubmit != nil {
		f.onSubmit()
	}
	if f.err != nil {
		return nil, f.err
	}
	f.received = append(f.received, sub)
	return &Receipt{ID: "entry-1"}, nil
}

func fillValid(c *Controller) {
	_ = c.Update(func(s *types.FormState) {
		*s = *validForm()
	})
}

func advanceToReview(t *testing.T, c *Controller) {
	t.Helper()
	for c.Step() < 5 {
		issues, err := c.Next()
		require.NoError(t, err)
		require.Empty(t, issues, "unexpected issues at step %d", c.Step())
	}
}

func TestControllerStartsAtStepOneWithDefaults(t *testing.T) {
	c := NewController(&fakeSink{})
	assert.Equal(t, 1, c.Step())
	assert.False(t, c.Dirty())
	assert.False(t, c.Submitted())

	form := c.Form()
	assert.Equal(t, types.JobTypeFullTime, form.JobType)
	assert.Equal(t, 0, form.RemotePreference)
	assert.False(t, form.Confirm)
}

func TestControllerNextBlockedByStepIssues(t *testing.T) {
	c := NewController(&fakeSink{})

	issues, err := c.Next()
	require.NoError(t, err)
	assert.NotEmpty(t, issues, "empty step 1 must not validate")
	assert.Equal(t, 1, c.Step(), "next must not advance past a failing gate")
}

func TestControllerNextNeverSkipsSteps(t *testing.T) {
	c := NewController(&fakeSink{})
	fillValid(c)

	for want := 2; want <= 5; want++ {
		issues, err := c.Next()
		require.NoError(t, err)
		require.Empty(t, issues)
		assert.Equal(t, want, c.Step())
	}

	// Next at the last step stays put.
	issues, err := c.Next()
	require.NoError(t, err)
	require.Empty(t, issues)
	assert.Equal(t, 5, c.Step())
}

func TestControllerPrevUnconditional(t *testing.T) {
	c := NewController(&fakeSink{})
	fillValid(c)
	advanceToReview(t, c)

	// Break the form, then walk back freely.
	_ = c.Update(func(s *types.FormState) { s.Email = "broken" })
	for want := 4; want >= 1; want-- {
		require.NoError(t, c.Prev())
		assert.Equal(t, want, c.Step())
	}
	require.NoError(t, c.Prev())
	assert.Equal(t, 1, c.Step())
}

func TestControllerStatePersistsAcrossNavigation(t *testing.T) {
	c := NewController(&fakeSink{})
	fillValid(c)
	advanceToReview(t, c)
	require.NoError(t, c.Prev())

	form := c.Form()
	assert.Equal(t, "Jane Doe", form.FullName)
	assert.Equal(t, []string{"Go", "Python", "SQL"}, form.PrimarySkills)
}

func TestControllerEditAfterPassingStepRevalidatedAtSubmit(t *testing.T) {
	c := NewController(&fakeSink{})
	fillValid(c)
	advanceToReview(t, c)

	// Change the department after step 2 already passed; the stale manager
	// must resurface at submit because validation always reads current state.
	_ = c.Update(func(s *types.FormState) { s.Department = types.DepartmentMarketing })

	receipt, issues, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, receipt)
	assert.True(t, issues.Has(types.FieldManager))
	assert.Equal(t, 5, c.Step())
}

func TestControllerSubmitOnlyFromReview(t *testing.T) {
	c := NewController(&fakeSink{})
	fillValid(c)

	_, _, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrNotAtReview)
}

func TestControllerSubmitSuccess(t *testing.T) {
	sink := &fakeSink{}
	c := NewController(sink)
	fillValid(c)
	advanceToReview(t, c)

	receipt, issues, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, issues)
	require.NotNil(t, receipt)
	assert.Equal(t, "entry-1", receipt.ID)
	assert.True(t, c.Submitted())
	assert.False(t, c.Dirty())

	require.Len(t, sink.received, 1)
	assert.Equal(t, "50000", sink.received[0].Fields["annualSalary"])
	assert.NotContains(t, sink.received[0].Fields, "salary")
}

func TestControllerSubmittingBlocksNavigation(t *testing.T) {
	sink := &fakeSink{}
	c := NewController(sink)
	sink.onSubmit = func() {
		assert.True(t, c.Submitting())
		_, err := c.Next()
		assert.ErrorIs(t, err, ErrSubmitting)
		assert.ErrorIs(t, c.Prev(), ErrSubmitting)
		_, _, err = c.Submit(context.Background())
		assert.ErrorIs(t, err, ErrSubmitting)
	}
	fillValid(c)
	advanceToReview(t, c)

	_, issues, err := c.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, issues)
	assert.False(t, c.Submitting())
}

func TestControllerSubmitFailurePreservesStateAndAllowsRetry(t *testing.T) {
	sink := &fakeSink{err: errors.New("storage unavailable")}
	c := NewController(sink)
	fillValid(c)
	advanceToReview(t, c)

	receipt, issues, err := c.Submit(context.Background())
	assert.Nil(t, receipt)
	assert.Empty(t, issues)

	var subErr *SubmissionError
	require.ErrorAs(t, err, &subErr)
	assert.Equal(t, 5, c.Step())
	assert.False(t, c.Submitted())
	assert.Equal(t, "Jane Doe", c.Form().FullName)

	// Retry after the sink recovers.
	sink.err = nil
	receipt, issues, err = c.Submit(context.Background())
	require.NoError(t, err)
	require.Empty(t, issues)
	require.NotNil(t, receipt)
	assert.True(t, c.Submitted())
}

func TestControllerRestart(t *testing.T) {
	c := NewController(&fakeSink{})

	assert.ErrorIs(t, c.Restart(), ErrNotSubmitted)

	fillValid(c)
	advanceToReview(t, c)
	_, _, err := c.Submit(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Restart())
	assert.Equal(t, 1, c.Step())
	assert.False(t, c.Submitted())
	assert.False(t, c.Dirty())
	assert.Empty(t, c.Form().FullName)
	assert.Equal(t, types.JobTypeFullTime, c.Form().JobType)
}

func TestControllerNavigationAfterSubmitRejected(t *testing.T) {
	c := NewController(&fakeSink{})
	fillValid(c)
	advanceToReview(t, c)
	_, _, err := c.Submit(context.Background())
	require.NoError(t, err)

	_, err = c.Next()
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.ErrorIs(t, c.Prev(), ErrAlreadySubmitted)
	_, _, err = c.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestControllerFormReturnsSnapshot(t *testing.T) {
	c := NewController(&fakeSink{})
	fillValid(c)

	snap := c.Form()
	snap.FullName = "Someone Else"
	snap.PrimarySkills[0] = "Rust"

	form := c.Form()
	assert.Equal(t, "Jane Doe", form.FullName)
	assert.Equal(t, "Go", form.PrimarySkills[0])
}
