// Package catalog declares every form field's base constraint: a check that
// reads only that field's value. Cross-field behavior lives in the rules
// package.
package catalog

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/onboarding-wizard/internal/rules"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

// phoneRe matches numbers like +1-123-456-7890.
var phoneRe = regexp.MustCompile(`^\+\d{1,3}-\d{3}-\d{3}-\d{4}$`)

const (
	maxProfilePicBytes = 2 * 1024 * 1024
	minAdultAge        = 18
	maxStartDateDays   = 90
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Phone format shared by phone and emergencyPhone.
	_ = v.RegisterValidation("phonedash", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	return v
}

// timeNow is stubbed in tests.
var timeNow = time.Now

// baseRule checks one field. Either tag+value is set (delegated to the
// validator) or check is set (hand-rolled predicate); message is the issue
// text on failure.
type baseRule struct {
	tag     string
	value   func(s *types.FormState) any
	message string
	check   func(s *types.FormState) string
}

var baseRules = map[types.Field]baseRule{
	types.FieldFullName: {check: checkFullName},
	types.FieldEmail: {
		tag:     "required,email",
		value:   func(s *types.FormState) any { return s.Email },
		message: "Invalid email address",
	},
	types.FieldPhone: {
		tag:     "required,phonedash",
		value:   func(s *types.FormState) any { return s.Phone },
		message: "Format: +1-123-456-7890",
	},
	types.FieldDOB:        {check: checkDOB},
	types.FieldProfilePic: {check: checkProfilePic},
	types.FieldDepartment: {
		tag:     "required,oneof=Engineering Marketing Sales HR Finance",
		value:   func(s *types.FormState) any { return s.Department },
		message: "Select department",
	},
	types.FieldPosition: {
		tag:     "min=3",
		value:   func(s *types.FormState) any { return s.Position },
		message: "At least 3 characters",
	},
	types.FieldStartDate: {check: checkStartDate},
	types.FieldJobType: {
		tag:     "required,oneof=Full-time Part-time Contract",
		value:   func(s *types.FormState) any { return s.JobType },
		message: "Select job type",
	},
	types.FieldPrimarySkills: {
		tag:     "min=3",
		value:   func(s *types.FormState) any { return s.PrimarySkills },
		message: "Pick at least 3 skills",
	},
	types.FieldSkillsExperience:   {check: checkSkillsExperience},
	types.FieldPreferredStartTime: {check: timeOfDayCheck(func(s *types.FormState) string { return s.PreferredStartTime })},
	types.FieldPreferredEndTime:   {check: timeOfDayCheck(func(s *types.FormState) string { return s.PreferredEndTime })},
	types.FieldRemotePreference: {
		tag:     "gte=0,lte=100",
		value:   func(s *types.FormState) any { return s.RemotePreference },
		message: "Must be between 0 and 100",
	},
	types.FieldExtraNotes: {
		tag:     "max=500",
		value:   func(s *types.FormState) any { return s.ExtraNotes },
		message: "At most 500 characters",
	},
	types.FieldContactName: {
		tag:     "required",
		value:   func(s *types.FormState) any { return s.ContactName },
		message: "Required",
	},
	types.FieldRelationship: {
		tag:     "required",
		value:   func(s *types.FormState) any { return s.Relationship },
		message: "Required",
	},
	types.FieldEmergencyPhone: {
		tag:     "required,phonedash",
		value:   func(s *types.FormState) any { return s.EmergencyPhone },
		message: "Invalid phone",
	},
	types.FieldConfirm: {check: checkConfirm},
	// salary, manager, managerApproved, guardianName and guardianPhone carry
	// no base constraint; they are governed by cross-field rules only.
}

func checkFullName(s *types.FormState) string {
	if strings.TrimSpace(s.FullName) == "" {
		return "Full name required"
	}
	if len(strings.Fields(s.FullName)) < 2 {
		return "Enter at least first and last name"
	}
	return ""
}

func checkDOB(s *types.FormState) string {
	if rules.Age(s.DOB) < minAdultAge {
		return "Must be at least 18 years old"
	}
	return ""
}

func checkProfilePic(s *types.FormState) string {
	pic := s.ProfilePic
	if pic == nil {
		return ""
	}
	okType := pic.ContentType == "image/jpeg" || pic.ContentType == "image/png"
	if !okType || pic.Size > maxProfilePicBytes {
		return "Only JPG/PNG up to 2MB"
	}
	return ""
}

func checkStartDate(s *types.FormState) string {
	const msg = "Start date must be within 90 days and not in past"
	d, err := time.Parse(rules.DateLayout, s.StartDate)
	if err != nil {
		return msg
	}
	now := timeNow()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, d.Location())
	if d.Before(today) {
		return msg
	}
	if d.After(today.AddDate(0, 0, maxStartDateDays)) {
		return msg
	}
	return ""
}

func checkSkillsExperience(s *types.FormState) string {
	for _, years := range s.SkillsExperience {
		if years < 0 {
			return "Experience must be 0 or more"
		}
	}
	return ""
}

func timeOfDayCheck(get func(s *types.FormState) string) func(s *types.FormState) string {
	return func(s *types.FormState) string {
		v := get(s)
		if v == "" {
			return ""
		}
		if _, ok := rules.MinutesOfDay(v); !ok {
			return "Invalid time"
		}
		return ""
	}
}

func checkConfirm(s *types.FormState) string {
	if !s.Confirm {
		return "Must confirm details"
	}
	return ""
}

// CheckBase runs the base constraint for one field against the form state.
// Fields without a base constraint always pass. The check is pure: it never
// reads any other field and never mutates state.
func CheckBase(field types.Field, s *types.FormState) types.Issues {
	rule, ok := baseRules[field]
	if !ok {
		return nil
	}
	if rule.check != nil {
		if msg := rule.check(s); msg != "" {
			return types.Issues{{Field: field, Message: msg}}
		}
		return nil
	}
	if err := validate.Var(rule.value(s), rule.tag); err != nil {
		return types.Issues{{Field: field, Message: rule.message}}
	}
	return nil
}

// HasBase reports whether the field declares a base constraint.
func HasBase(field types.Field) bool {
	_, ok := baseRules[field]
	return ok
}
