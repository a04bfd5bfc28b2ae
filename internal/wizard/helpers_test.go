package wizard

import (
	"time"

	"github.com/jonathan/onboarding-wizard/internal/rules"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

func floatPtr(v float64) *float64 { return &v }

func yearsAgo(n int) string {
	return time.Now().AddDate(-n, 0, 0).Format(rules.DateLayout)
}

// upcomingWeekday returns the nearest date at least seven days out that is
// neither Friday nor Saturday, so start dates stay clear of the HR/Finance
// blackout regardless of when tests run.
func upcomingWeekday() string {
	d := time.Now().AddDate(0, 0, 7)
	for d.Weekday() == time.Friday || d.Weekday() == time.Saturday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(rules.DateLayout)
}

// nextFriday returns the next Friday strictly after today, always inside the
// 90-day start window.
func nextFriday() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != time.Friday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(rules.DateLayout)
}

// validForm returns a form that passes full validation: an adult engineer
// with three skills, office hours, and a complete emergency contact.
func validForm() *types.FormState {
	return &types.FormState{
		FullName:           "Jane Doe",
		Email:              "jane@x.com",
		Phone:              "+1-123-456-7890",
		DOB:                yearsAgo(30),
		Department:         types.DepartmentEngineering,
		Position:           "Backend Engineer",
		StartDate:          upcomingWeekday(),
		JobType:            types.JobTypeFullTime,
		Salary:             floatPtr(50000),
		Manager:            "Alice Johnson",
		PrimarySkills:      []string{"Go", "Python", "SQL"},
		SkillsExperience:   map[string]float64{"Go": 4, "Python": 2, "SQL": 3},
		PreferredStartTime: "09:00",
		PreferredEndTime:   "17:00",
		RemotePreference:   30,
		ContactName:        "John Doe",
		Relationship:       "Spouse",
		EmergencyPhone:     "+1-555-000-1111",
		Confirm:            true,
	}
}
