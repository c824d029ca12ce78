package rrule

import "fmt"

// Sentinel errors for cross-field invariant violations and structural
// failures that don't carry per-parameter detail.
var (
	// ErrEmptyInput is returned when the RRULE string is empty.
	ErrEmptyInput = fmt.Errorf("rrule: empty input")

	// ErrDuplicateParameter is returned when the same parameter name
	// appears twice in an RRULE string.
	ErrDuplicateParameter = fmt.Errorf("rrule: duplicate parameter")

	// ErrMalformedParameter is returned when a "NAME=VALUE" segment
	// cannot be split on "=".
	ErrMalformedParameter = fmt.Errorf("rrule: malformed parameter")

	// ErrFrequencyRequired is returned when FREQ is missing.
	ErrFrequencyRequired = fmt.Errorf("rrule: FREQ is required")

	// ErrCountAndUntil is returned when COUNT and UNTIL are both present.
	ErrCountAndUntil = fmt.Errorf("rrule: COUNT and UNTIL must not both be set")

	// ErrByWeekNoRequiresYearly is returned when BYWEEKNO is used with a
	// frequency other than YEARLY.
	ErrByWeekNoRequiresYearly = fmt.Errorf("rrule: BYWEEKNO requires FREQ=YEARLY")

	// ErrByMonthDayForbidden is returned when BYMONTHDAY is used with a
	// frequency other than MONTHLY or YEARLY.
	ErrByMonthDayForbidden = fmt.Errorf("rrule: BYMONTHDAY requires FREQ=MONTHLY or FREQ=YEARLY")

	// ErrBySetPosRequiresOther is returned when BYSETPOS appears with no
	// other BY* field present.
	ErrBySetPosRequiresOther = fmt.Errorf("rrule: BYSETPOS requires at least one other BYxxx rule part")

	// ErrByWeekNoOrdinalByDay is returned when a YEARLY rule combines
	// BYWEEKNO with an ordinal-qualified BYDAY entry.
	ErrByWeekNoOrdinalByDay = fmt.Errorf("rrule: BYDAY entries must not specify a numeric position when BYWEEKNO is present")

	// ErrYearlyByDayOrdinalWithinYear is returned for BYDAY ordinals that
	// would require whole-year ordinal semantics (e.g. 20MO), which this
	// implementation does not support.
	ErrYearlyByDayOrdinalWithinYear = fmt.Errorf("rrule: ordinal-within-year BYDAY semantics are not supported")

	// ErrInvalidAnchor denotes an anchor date-time that cannot be parsed
	// or does not denote a real calendar date. No function in this module
	// returns it: the engine takes its anchor as a time.Time.
	ErrInvalidAnchor = fmt.Errorf("rrule: invalid anchor date-time")

	// ErrUnboundedOccurrences is returned by Occurrences when limit <= 0
	// and the rule has neither COUNT nor UNTIL.
	ErrUnboundedOccurrences = fmt.Errorf("rrule: refusing to enumerate an unbounded rule without a limit")
)

// ValidationError describes a single parameter that failed validation. It
// names the offending parameter and fragment so a caller can report a
// precise diagnostic back to whoever authored the RRULE text.
type ValidationError struct {
	Param    string
	Fragment string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rrule: invalid %s value %q: %s", e.Param, e.Fragment, e.Reason)
}

func newValidationError(param, fragment, reason string) *ValidationError {
	return &ValidationError{Param: param, Fragment: fragment, Reason: reason}
}

// CombinationError wraps one of the Err* cross-field sentinels above with
// enough context to identify which fields were in conflict.
type CombinationError struct {
	Err    error
	Detail string
}

func (e *CombinationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Detail)
}

func (e *CombinationError) Unwrap() error { return e.Err }

func newCombinationError(err error, detail string) *CombinationError {
	return &CombinationError{Err: err, Detail: detail}
}
