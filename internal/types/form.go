// Package types provides type definitions for the onboarding wizard form state
// and validation results shared across the system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Field identifies a single form field by its wire name.
type Field string

// All form fields, in wizard order.
const (
	FieldFullName           Field = "fullName"
	FieldEmail              Field = "email"
	FieldPhone              Field = "phone"
	FieldDOB                Field = "dob"
	FieldProfilePic         Field = "profilePic"
	FieldDepartment         Field = "department"
	FieldPosition           Field = "position"
	FieldStartDate          Field = "startDate"
	FieldJobType            Field = "jobType"
	FieldSalary             Field = "salary"
	FieldManager            Field = "manager"
	FieldPrimarySkills      Field = "primarySkills"
	FieldSkillsExperience   Field = "skillsExperience"
	FieldPreferredStartTime Field = "preferredStartTime"
	FieldPreferredEndTime   Field = "preferredEndTime"
	FieldRemotePreference   Field = "remotePreference"
	FieldManagerApproved    Field = "managerApproved"
	FieldExtraNotes         Field = "extraNotes"
	FieldContactName        Field = "contactName"
	FieldRelationship       Field = "relationship"
	FieldEmergencyPhone     Field = "emergencyPhone"
	FieldGuardianName       Field = "guardianName"
	FieldGuardianPhone      Field = "guardianPhone"
	FieldConfirm            Field = "confirm"
)

// AllFields lists every field in canonical order. Validation iterates this
// slice rather than a map so issue ordering is deterministic.
var AllFields = []Field{
	FieldFullName, FieldEmail, FieldPhone, FieldDOB, FieldProfilePic,
	FieldDepartment, FieldPosition, FieldStartDate, FieldJobType, FieldSalary, FieldManager,
	FieldPrimarySkills, FieldSkillsExperience, FieldPreferredStartTime, FieldPreferredEndTime,
	FieldRemotePreference, FieldManagerApproved, FieldExtraNotes,
	FieldContactName, FieldRelationship, FieldEmergencyPhone, FieldGuardianName, FieldGuardianPhone,
	FieldConfirm,
}

// Departments available for selection.
const (
	DepartmentEngineering = "Engineering"
	DepartmentMarketing   = "Marketing"
	DepartmentSales       = "Sales"
	DepartmentHR          = "HR"
	DepartmentFinance     = "Finance"
)

// Departments returns the ordered list of valid department names.
func Departments() []string {
	return []string{DepartmentEngineering, DepartmentMarketing, DepartmentSales, DepartmentHR, DepartmentFinance}
}

// Job types available for selection.
const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
)

// JobTypes returns the ordered list of valid job types.
func JobTypes() []string {
	return []string{JobTypeFullTime, JobTypePartTime, JobTypeContract}
}

// Relationships accepted for the emergency contact.
func Relationships() []string {
	return []string{"Parent", "Sibling", "Spouse", "Friend", "Other"}
}

// FileRef describes an uploaded file. Only metadata is validated and
// persisted; Data is carried solely so the submission payload can attach the
// original bytes.
type FileRef struct {
	Filename    string `json:"filename"`
	ContentType string `json:"type"`
	Size        int64  `json:"size"`
	Data        []byte `json:"-"`
}

// FormState is the full wizard form: a superset of every step's fields.
// Dates use "2006-01-02" and times-of-day use "15:04". Optional scalar fields
// that must distinguish "unset" from a zero value are pointers.
type FormState struct {
	// Step 1 - Personal
	FullName   string   `json:"fullName"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	DOB        string   `json:"dob"`
	ProfilePic *FileRef `json:"profilePic,omitempty"`

	// Step 2 - Job
	Department string   `json:"department"`
	Position   string   `json:"position"`
	StartDate  string   `json:"startDate"`
	JobType    string   `json:"jobType"`
	Salary     *float64 `json:"salary"`
	Manager    string   `json:"manager,omitempty"`

	// Step 3 - Skills
	PrimarySkills      []string           `json:"primarySkills"`
	SkillsExperience   map[string]float64 `json:"skillsExperience"`
	PreferredStartTime string             `json:"preferredStartTime,omitempty"`
	PreferredEndTime   string             `json:"preferredEndTime,omitempty"`
	RemotePreference   int                `json:"remotePreference"`
	ManagerApproved    bool               `json:"managerApproved"`
	ExtraNotes         string             `json:"extraNotes,omitempty"`

	// Step 4 - Emergency contact
	ContactName    string `json:"contactName"`
	Relationship   string `json:"relationship"`
	EmergencyPhone string `json:"emergencyPhone"`
	GuardianName   string `json:"guardianName,omitempty"`
	GuardianPhone  string `json:"guardianPhone,omitempty"`

	// Step 5 - Review
	Confirm bool `json:"confirm"`
}

// DefaultFormState returns a fresh form with session defaults applied.
func DefaultFormState() *FormState {
	return &FormState{
		JobType:          JobTypeFullTime,
		PrimarySkills:    []string{},
		SkillsExperience: map[string]float64{},
		RemotePreference: 0,
		Confirm:          false,
	}
}

// Clone returns a deep copy of the form state so validation can run against
// an immutable snapshot.
func (s *FormState) Clone() *FormState {
	out := *s
	if s.ProfilePic != nil {
		pic := *s.ProfilePic
		out.ProfilePic = &pic
	}
	if s.Salary != nil {
		v := *s.Salary
		out.Salary = &v
	}
	out.PrimarySkills = append([]string(nil), s.PrimarySkills...)
	out.SkillsExperience = make(map[string]float64, len(s.SkillsExperience))
	for k, v := range s.SkillsExperience {
		out.SkillsExperience[k] = v
	}
	return &out
}
