// Package wizard provides the validation orchestrator and the step
// controller driving the onboarding flow.
package wizard

import (
	"github.com/jonathan/onboarding-wizard/internal/catalog"
	"github.com/jonathan/onboarding-wizard/internal/rules"
	"github.com/jonathan/onboarding-wizard/internal/steps"
	"github.com/jonathan/onboarding-wizard/internal/types"
)

// ValidateStep validates only the fields gated by the given step: base
// constraints for the step's visible fields, plus every cross-field rule
// triggered by a field in the step, restricted to issues targeting a visible
// field of the step. The orchestrator is stateless; it always evaluates the
// snapshot it is handed.
func ValidateStep(s *types.FormState, step int) types.Issues {
	stepSet := make(map[types.Field]bool)
	for _, f := range steps.FieldsFor(step) {
		stepSet[f] = true
	}
	visible := make(map[types.Field]bool)
	for _, f := range steps.VisibleFieldsFor(step, s) {
		visible[f] = true
	}

	var issues types.Issues
	for _, f := range steps.VisibleFieldsFor(step, s) {
		issues = append(issues, catalog.CheckBase(f, s)...)
	}
	for _, r := range rules.Registry {
		if r.SubmitOnly || !r.Triggered(stepSet) || !visible[r.Target] {
			continue
		}
		if msg := r.Check(s); msg != "" {
			issues = append(issues, types.Issue{Field: r.Target, Message: msg})
		}
	}
	return issues
}

// ValidateAll validates the entire form: base constraints for every visible
// field plus every cross-field rule, including submit-only rules. Passing
// every step implies passing ValidateAll apart from the submit-only checks,
// since both paths re-evaluate the same current state.
func ValidateAll(s *types.FormState) types.Issues {
	var issues types.Issues
	for _, f := range types.AllFields {
		if !steps.Visible(f, s) {
			continue
		}
		issues = append(issues, catalog.CheckBase(f, s)...)
	}
	issues = append(issues, rules.Check(s, true)...)
	return issues
}
