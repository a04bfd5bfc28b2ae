// Package directory provides the static employee directory backing the
// manager and skill pickers. Lookups are pure and side-effect free.
package directory

import "github.com/jonathan/onboarding-wizard/internal/types"

// managersByDepartment is the demo directory. Order matters: the UI renders
// options in this order and tests rely on it.
var managersByDepartment = map[string][]string{
	types.DepartmentEngineering: {"Alice Johnson", "Bob Smith"},
	types.DepartmentMarketing:   {"Carol White"},
	types.DepartmentSales:       {"David Lee", "Eva Green"},
	types.DepartmentHR:          {"Frank Moore"},
	types.DepartmentFinance:     {"Grace Kim"},
}

// skillsByDepartment maps each department to its selectable skills.
var skillsByDepartment = map[string][]string{
	types.DepartmentEngineering: {"Go", "Python", "JavaScript", "SQL", "Kubernetes"},
	types.DepartmentMarketing:   {"SEO", "Copywriting", "Analytics", "Branding"},
	types.DepartmentSales:       {"Negotiation", "CRM", "Prospecting", "Forecasting"},
	types.DepartmentHR:          {"Recruiting", "Onboarding", "Payroll", "Compliance"},
	types.DepartmentFinance:     {"Accounting", "Budgeting", "Auditing", "Reporting"},
}

// Managers returns the ordered manager names for a department, or nil when
// the department is unknown or empty.
func Managers(department string) []string {
	return append([]string(nil), managersByDepartment[department]...)
}

// HasManager reports whether name is a valid manager for the department.
func HasManager(department, name string) bool {
	for _, m := range managersByDepartment[department] {
		if m == name {
			return true
		}
	}
	return false
}

// Skills returns the selectable skills for a department. When no department
// is selected every skill is offered, mirroring the picker's fallback.
func Skills(department string) []string {
	if list, ok := skillsByDepartment[department]; ok {
		return append([]string(nil), list...)
	}
	var all []string
	for _, dept := range types.Departments() {
		all = append(all, skillsByDepartment[dept]...)
	}
	return all
}
