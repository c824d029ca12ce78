package rrule

import "strings"

// param is a single "NAME=VALUE" pair extracted from an RRULE string.
// Name is upper-cased; Value is passed through verbatim.
type param struct {
	Name  string
	Value string
}

// tokenize splits an RRULE value into an ordered list of NAME=VALUE pairs.
// It rejects an empty input, any segment that isn't "NAME=VALUE" with a
// non-empty NAME, and any NAME repeated across segments. Unknown
// parameter names are retained in the returned slice rather than dropped —
// Parse is responsible for ignoring the ones it doesn't recognize so that
// forward-compatible RRULE text doesn't fail outright.
func tokenize(s string) ([]param, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}

	parts := strings.Split(s, ";")
	params := make([]param, 0, len(parts))
	seen := make(map[string]bool, len(parts))

	for _, part := range parts {
		name, value, found := strings.Cut(part, "=")
		if !found || name == "" {
			return nil, ErrMalformedParameter
		}
		name = strings.ToUpper(name)
		if seen[name] {
			return nil, ErrDuplicateParameter
		}
		seen[name] = true
		params = append(params, param{Name: name, Value: value})
	}

	return params, nil
}

// knownParams is the set of RRULE parameter names this package validates.
// Anything else is a soft, ignored UnknownParameter.
var knownParams = map[string]bool{
	"FREQ":       true,
	"INTERVAL":   true,
	"COUNT":      true,
	"UNTIL":      true,
	"BYDAY":      true,
	"BYMONTHDAY": true,
	"BYMONTH":    true,
	"BYWEEKNO":   true,
	"BYSETPOS":   true,
	"WKST":       true,
}
