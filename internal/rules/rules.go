package rules

import (
	"time"

	"github.com/jonathan/onboarding-wizard/internal/directory"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

// Rule is one cross-field constraint. Rules are independent and
// order-insensitive: each reads the form state, and on violation produces a
// single message attached to Target. Triggers lists the fields whose values
// the predicate reads, so step-scoped validation can select the rules that
// apply to a step's field set.
type Rule struct {
	Name       string
	Triggers   []types.Field
	Target     types.Field
	SubmitOnly bool // evaluated only for full-form validation
	Check      func(s *types.FormState) string
}

// Registry holds every cross-field rule. Evaluation order is fixed only for
// deterministic issue ordering; no rule depends on another's outcome.
var Registry = []Rule{
	{
		Name:     "salary_by_job_type",
		Triggers: []types.Field{types.FieldJobType, types.FieldSalary},
		Target:   types.FieldSalary,
		Check:    checkSalaryByJobType,
	},
	{
		Name:     "start_date_blackout",
		Triggers: []types.Field{types.FieldDepartment, types.FieldStartDate},
		Target:   types.FieldStartDate,
		Check:    checkStartDateBlackout,
	},
	{
		Name:     "guardian_under_21",
		Triggers: []types.Field{types.FieldDOB, types.FieldGuardianName, types.FieldGuardianPhone},
		Target:   types.FieldGuardianName,
		Check:    checkGuardianUnder21,
	},
	{
		Name:     "work_hours_window",
		Triggers: []types.Field{types.FieldPreferredStartTime, types.FieldPreferredEndTime},
		Target:   types.FieldPreferredEndTime,
		Check:    checkWorkHoursWindow,
	},
	{
		Name:     "manager_in_department",
		Triggers: []types.Field{types.FieldDepartment, types.FieldManager},
		Target:   types.FieldManager,
		Check:    checkManagerInDepartment,
	},
	{
		Name:       "skills_experience_coverage",
		Triggers:   []types.Field{types.FieldPrimarySkills, types.FieldSkillsExperience},
		Target:     types.FieldSkillsExperience,
		SubmitOnly: true,
		Check:      checkSkillsExperienceCoverage,
	},
}

// Salary bounds per job type. Part-time intentionally has no bound.
const (
	contractRateMin   = 50
	contractRateMax   = 150
	fullTimeSalaryMin = 30000
	fullTimeSalaryMax = 200000
)

func checkSalaryByJobType(s *types.FormState) string {
	switch s.JobType {
	case types.JobTypeContract:
		if s.Salary == nil || *s.Salary < contractRateMin || *s.Salary > contractRateMax {
			return "Contract hourly rate $50–$150"
		}
	case types.JobTypeFullTime:
		if s.Salary == nil || *s.Salary < fullTimeSalaryMin || *s.Salary > fullTimeSalaryMax {
			return "Full-time salary $30k–$200k"
		}
	}
	return ""
}

func checkStartDateBlackout(s *types.FormState) string {
	if s.Department != types.DepartmentHR && s.Department != types.DepartmentFinance {
		return ""
	}
	if s.StartDate == "" {
		return ""
	}
	d, err := time.Parse(DateLayout, s.StartDate)
	if err != nil {
		return ""
	}
	if wd := d.Weekday(); wd == time.Friday || wd == time.Saturday {
		return "HR/Finance cannot start on Friday or Saturday"
	}
	return ""
}

func checkGuardianUnder21(s *types.FormState) string {
	if s.DOB == "" || Age(s.DOB) >= 21 {
		return ""
	}
	if s.GuardianName == "" || s.GuardianPhone == "" {
		return "Guardian required if under 21"
	}
	return ""
}

func checkWorkHoursWindow(s *types.FormState) string {
	if s.PreferredStartTime == "" || s.PreferredEndTime == "" {
		return ""
	}
	if !WorkWindowOK(s.PreferredStartTime, s.PreferredEndTime) {
		return "Work hours must be within 6AM–10PM and start < end"
	}
	return ""
}

// A manager chosen before a department change may no longer belong to the
// selected department; validation rejects the stale value rather than
// silently accepting it.
func checkManagerInDepartment(s *types.FormState) string {
	if s.Manager == "" || s.Department == "" {
		return ""
	}
	if !directory.HasManager(s.Department, s.Manager) {
		return "Manager is not in the selected department"
	}
	return ""
}

func checkSkillsExperienceCoverage(s *types.FormState) string {
	for _, skill := range s.PrimarySkills {
		if _, ok := s.SkillsExperience[skill]; !ok {
			return "Provide experience for each selected skill"
		}
	}
	selected := make(map[string]bool, len(s.PrimarySkills))
	for _, skill := range s.PrimarySkills {
		selected[skill] = true
	}
	for skill := range s.SkillsExperience {
		if !selected[skill] {
			return "Provide experience for each selected skill"
		}
	}
	return ""
}

// Check evaluates every applicable rule against the form state and returns
// the collected issues. When submit is false, submit-only rules are skipped.
func Check(s *types.FormState, submit bool) types.Issues {
	var issues types.Issues
	for _, r := range Registry {
		if r.SubmitOnly && !submit {
			continue
		}
		if msg := r.Check(s); msg != "" {
			issues = append(issues, types.Issue{Field: r.Target, Message: msg})
		}
	}
	return issues
}

// Triggered reports whether the rule reads any field in the given set.
func (r Rule) Triggered(fields map[types.Field]bool) bool {
	for _, f := range r.Triggers {
		if fields[f] {
			return true
		}
	}
	return false
}
