package steps

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/onboarding-wizard/internal/rules"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

func TestFieldsFor(t *testing.T) {
	assert.Equal(t, []types.Field{
		types.FieldFullName, types.FieldEmail, types.FieldPhone, types.FieldDOB, types.FieldProfilePic,
	}, FieldsFor(1))
	assert.Equal(t, []types.Field{types.FieldConfirm}, FieldsFor(5))
	assert.Empty(t, FieldsFor(0))
	assert.Empty(t, FieldsFor(6))
}

func TestEveryStepFieldIsKnown(t *testing.T) {
	known := make(map[types.Field]bool)
	for _, f := range types.AllFields {
		known[f] = true
	}
	for step := First; step <= Last; step++ {
		for _, f := range FieldsFor(step) {
			assert.True(t, known[f], "step %d references unknown field %s", step, f)
		}
	}
}

func TestVisible(t *testing.T) {
	adult := time.Now().AddDate(-30, 0, 0).Format(rules.DateLayout)
	minor := time.Now().AddDate(-19, 0, 0).Format(rules.DateLayout)

	tests := []struct {
		name  string
		field types.Field
		state *types.FormState
		want  bool
	}{
		{"manager hidden without department", types.FieldManager, &types.FormState{}, false},
		{"manager shown with department", types.FieldManager, &types.FormState{Department: types.DepartmentSales}, true},
		{"skills experience hidden without skills", types.FieldSkillsExperience, &types.FormState{}, false},
		{"skills experience shown with skills", types.FieldSkillsExperience, &types.FormState{PrimarySkills: []string{"Go"}}, true},
		{"manager approved hidden at fifty", types.FieldManagerApproved, &types.FormState{RemotePreference: 50}, false},
		{"manager approved shown above fifty", types.FieldManagerApproved, &types.FormState{RemotePreference: 51}, true},
		{"guardian shown for minor", types.FieldGuardianName, &types.FormState{DOB: minor}, true},
		{"guardian hidden for adult", types.FieldGuardianPhone, &types.FormState{DOB: adult}, false},
		{"guardian shown when dob unset", types.FieldGuardianName, &types.FormState{}, true},
		{"plain field always visible", types.FieldEmail, &types.FormState{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Visible(tt.field, tt.state))
		})
	}
}

func TestVisibleFieldsFor(t *testing.T) {
	adult := time.Now().AddDate(-30, 0, 0).Format(rules.DateLayout)

	fields := VisibleFieldsFor(2, &types.FormState{})
	assert.NotContains(t, fields, types.FieldManager, "manager hidden before a department is chosen")
	assert.Contains(t, fields, types.FieldDepartment)

	fields = VisibleFieldsFor(4, &types.FormState{DOB: adult})
	assert.Equal(t, []types.Field{types.FieldContactName, types.FieldRelationship, types.FieldEmergencyPhone}, fields)
}
