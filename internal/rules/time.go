// Package rules provides the cross-field rule engine: constraints whose
// predicates read two or more fields of the form state.
package rules

import (
	"time"
)

const (
	// DateLayout is the wire format for date fields.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire format for time-of-day fields.
	TimeLayout = "15:04"

	hoursPerYear = 365.25 * 24
)

// timeNow is stubbed in tests.
var timeNow = time.Now

// Age returns the age in fractional years for a date of birth. It uses a
// fixed 365.25-day year rather than calendar arithmetic; downstream rules
// depend on this exact approximation. Empty or unparseable input yields 0.
func Age(dob string) float64 {
	if dob == "" {
		return 0
	}
	t, err := time.Parse(DateLayout, dob)
	if err != nil {
		return 0
	}
	return timeNow().Sub(t).Hours() / hoursPerYear
}

// MinutesOfDay parses a "15:04" time-of-day into minutes since midnight.
func MinutesOfDay(hhmm string) (int, bool) {
	t, err := time.Parse(TimeLayout, hhmm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

const (
	workDayStartMins = 6 * 60  // 06:00
	workDayEndMins   = 22 * 60 // 22:00
)

// WorkWindowOK reports whether a preferred start/end pair is acceptable:
// start no earlier than 06:00, end no later than 22:00, start strictly
// before end. A missing or unparseable side is treated as acceptable; the
// pair is only constrained when both are present.
func WorkWindowOK(start, end string) bool {
	if start == "" || end == "" {
		return true
	}
	startMins, ok := MinutesOfDay(start)
	if !ok {
		return true
	}
	endMins, ok := MinutesOfDay(end)
	if !ok {
		return true
	}
	return startMins >= workDayStartMins && endMins <= workDayEndMins && startMins < endMins
}
