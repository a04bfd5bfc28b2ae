// Package payload transforms a completed form into the submission format the
// sink accepts: scalar fields as strings, nested values JSON-encoded, and the
// profile picture carried as a separate attachment.
package payload

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jonathan/onboarding-wizard/internal/types"
)

// Submission is the sink-ready form of a completed wizard session.
type Submission struct {
	Fields map[string]string
	File   *types.FileRef
}

// Build flattens the form state. The salary field is renamed according to
// job type: hourlyRate for Contract, annualSalary otherwise. Collections are
// JSON-encoded strings; a nil salary becomes the empty string.
func Build(s *types.FormState) (*Submission, error) {
	skills, err := json.Marshal(s.PrimarySkills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode primary skills: %w", err)
	}
	experience, err := json.Marshal(s.SkillsExperience)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skills experience: %w", err)
	}

	fields := map[string]string{
		"fullName":           s.FullName,
		"email":              s.Email,
		"phone":              s.Phone,
		"dob":                s.DOB,
		"department":         s.Department,
		"position":           s.Position,
		"startDate":          s.StartDate,
		"jobType":            s.JobType,
		"manager":            s.Manager,
		"primarySkills":      string(skills),
		"skillsExperience":   string(experience),
		"preferredStartTime": s.PreferredStartTime,
		"preferredEndTime":   s.PreferredEndTime,
		"remotePreference":   strconv.Itoa(s.RemotePreference),
		"managerApproved":    strconv.FormatBool(s.ManagerApproved),
		"extraNotes":         s.ExtraNotes,
		"contactName":        s.ContactName,
		"relationship":       s.Relationship,
		"emergencyPhone":     s.EmergencyPhone,
		"guardianName":       s.GuardianName,
		"guardianPhone":      s.GuardianPhone,
		"confirm":            strconv.FormatBool(s.Confirm),
	}

	salary := ""
	if s.Salary != nil {
		salary = strconv.FormatFloat(*s.Salary, 'f', -1, 64)
	}
	if s.JobType == types.JobTypeContract {
		fields["hourlyRate"] = salary
	} else {
		fields["annualSalary"] = salary
	}

	return &Submission{Fields: fields, File: s.ProfilePic}, nil
}
