//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormState(t *testing.T) {
	s := DefaultFormState()
	assert.Equal(t, JobTypeFullTime, s.JobType)
	assert.Equal(t, 0, s.RemotePreference)
	assert.False(t, s.Confirm)
	assert.Empty(t, s.PrimarySkills)
	assert.Empty(t, s.SkillsExperience)
	assert.Nil(t, s.Salary)
	assert.Nil(t, s.ProfilePic)
}

func TestCloneIsDeep(t *testing.T) {
	salary := 75.0
	s := &FormState{
		FullName:         "Jane Doe",
		Salary:           &salary,
		ProfilePic:       &FileRef{Filename: "me.png"},
		PrimarySkills:    []string{"Go", "SQL"},
		SkillsExperience: map[string]float64{"Go": 4},
	}

	c := s.Clone()
	c.FullName = "Someone Else"
	*c.Salary = 100
	c.ProfilePic.Filename = "other.png"
	c.PrimarySkills[0] = "Rust"
	c.SkillsExperience["Go"] = 0

	assert.Equal(t, "Jane Doe", s.FullName)
	assert.Equal(t, 75.0, *s.Salary)
	assert.Equal(t, "me.png", s.ProfilePic.Filename)
	assert.Equal(t, "Go", s.PrimarySkills[0])
	assert.Equal(t, 4.0, s.SkillsExperience["Go"])
}

func TestIssuesHelpers(t *testing.T) {
	issues := Issues{
		{Field: FieldSalary, Message: "too low"},
		{Field: FieldEmail, Message: "invalid"},
		{Field: FieldSalary, Message: "missing"},
	}

	assert.True(t, issues.Has(FieldSalary))
	assert.False(t, issues.Has(FieldPhone))

	forSalary := issues.ForField(FieldSalary)
	require.Len(t, forSalary, 2)
	assert.Equal(t, "too low", forSalary[0].Message)

	assert.Equal(t, []Field{FieldSalary, FieldEmail}, issues.Fields())
}

func TestAllFieldsCoverEveryStepField(t *testing.T) {
	seen := make(map[Field]bool)
	for _, f := range AllFields {
		assert.False(t, seen[f], "duplicate field %s", f)
		seen[f] = true
	}
	assert.Len(t, AllFields, 24)
}
