// Package steps partitions the wizard's fields across its five steps and
// computes which fields are visible for a given form state. A field that is
// not visible never blocks step advancement.
package steps

import (
	"github.com/jonathan/onboarding-wizard/internal/rules"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

// Count is the number of wizard steps.
const Count = 5

// First and Last bound the step index range.
const (
	First = 1
	Last  = Count
)

const (
	guardianAgeLimit     = 21
	remoteApprovalCutoff = 50
)

// stepFields maps each step to the ordered fields it gates. A field absent
// from every step (extraNotes, managerApproved) is still validated by the
// full-form pass.
var stepFields = map[int][]types.Field{
	1: {types.FieldFullName, types.FieldEmail, types.FieldPhone, types.FieldDOB, types.FieldProfilePic},
	2: {types.FieldDepartment, types.FieldPosition, types.FieldStartDate, types.FieldJobType, types.FieldSalary, types.FieldManager},
	3: {types.FieldPrimarySkills, types.FieldSkillsExperience, types.FieldPreferredStartTime, types.FieldPreferredEndTime, types.FieldRemotePreference},
	4: {types.FieldContactName, types.FieldRelationship, types.FieldEmergencyPhone, types.FieldGuardianName, types.FieldGuardianPhone},
	5: {types.FieldConfirm},
}

// FieldsFor returns the ordered fields gated by a step. Unknown steps yield
// nil.
func FieldsFor(step int) []types.Field {
	return append([]types.Field(nil), stepFields[step]...)
}

// Visible reports whether a field is currently shown given the form state.
// Invisible fields are excluded from step gating so a conditionally hidden
// requirement cannot block advancement.
func Visible(field types.Field, s *types.FormState) bool {
	switch field {
	case types.FieldManager:
		return s.Department != ""
	case types.FieldSkillsExperience:
		return len(s.PrimarySkills) > 0
	case types.FieldManagerApproved:
		return s.RemotePreference > remoteApprovalCutoff
	case types.FieldGuardianName, types.FieldGuardianPhone:
		return rules.Age(s.DOB) < guardianAgeLimit
	default:
		return true
	}
}

// VisibleFieldsFor returns the step's fields filtered to those visible for
// the form state, preserving step order.
func VisibleFieldsFor(step int, s *types.FormState) []types.Field {
	var out []types.Field
	for _, f := range stepFields[step] {
		if Visible(f, s) {
			out = append(out, f)
		}
	}
	return out
}
