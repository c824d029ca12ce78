// Package ical is a deliberately small iCalendar (RFC 5545) reader. It
// extracts only what the rrule engine needs to drive recurrence from a
// VEVENT or VTODO: an anchor date-time, its timezone context, and the raw
// RRULE value text (parsed separately by package rrule).
package ical

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ComponentKind distinguishes the two component types this package reads.
type ComponentKind string

const (
	VEVENT ComponentKind = "VEVENT"
	VTODO  ComponentKind = "VTODO"
)

// Component is the distilled result of scanning one VEVENT or VTODO block.
type Component struct {
	Kind ComponentKind

	// Anchor is the component's DTSTART (VEVENT) or DUE-falling-back-to-
	// DTSTART (VTODO), the date-time an RRULE attached to this component
	// recurs from.
	Anchor time.Time

	// TZID is the IANA zone name carried by the anchor property's TZID
	// parameter, "UTC" if the value had a trailing Z, or "" if neither.
	TZID string

	// Floating reports whether the anchor carries no timezone
	// information at all (RFC 5545 §3.3.5's "floating" time).
	Floating bool

	RRule   string // raw value, "" if the component has no RRULE
	UID     string
	Summary string
}

// Option configures a Scan call.
type Option func(*scanner)

// WithLogger routes diagnostics about skipped or malformed properties to
// log. The default is zerolog.Nop() — this package never logs unless a
// caller opts in.
func WithLogger(log zerolog.Logger) Option {
	return func(s *scanner) { s.log = log }
}

// ScanReader unfolds RFC 5545 line continuations from r (a line starting
// with a space or tab is a continuation of the previous line) and scans
// the result.
func ScanReader(r io.Reader, opts ...Option) ([]Component, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ical: reading input: %w", err)
	}
	return Scan(lines, opts...)
}

// Scan reads already-unfolded content lines and returns every VEVENT and
// VTODO component found, in document order. BEGIN/END nesting is tracked
// so that components nested inside a VEVENT/VTODO (VALARM, in practice)
// don't confuse the scanner, but their properties are not collected. A
// component with no usable anchor (DTSTART for VEVENT, DTSTART-or-DUE for
// VTODO) is dropped rather than returned with a zero time.
func Scan(lines []string, opts ...Option) ([]Component, error) {
	s := &scanner{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s.run(lines)
}

type scanner struct {
	log zerolog.Logger
}

// frame tracks one entry in the BEGIN/END nesting stack. Only the
// outermost VEVENT/VTODO frame accumulates properties; anything nested
// inside it (VALARM, etc.) is tracked solely so its END line pops the
// right frame.
type frame struct {
	name       string
	collecting bool
	dtstart    *anchorValue
	due        *anchorValue
	rrule      string
	uid        string
	summary    string
}

type anchorValue struct {
	t        time.Time
	tzid     string
	floating bool
}

func (s *scanner) run(lines []string) ([]Component, error) {
	var out []Component
	var stack []*frame

	for lineNo, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		name, params, value, err := parseContentLine(line)
		if err != nil {
			s.log.Debug().Int("line", lineNo+1).Str("content", raw).Err(err).Msg("skipping malformed property")
			continue
		}

		switch name {
		case "BEGIN":
			f := &frame{name: value}
			if len(stack) > 0 && stack[len(stack)-1].collecting {
				// Nested inside an already-collecting frame (e.g. VALARM
				// inside VEVENT): track it, but it never collects itself.
			} else {
				f.collecting = value == string(VEVENT) || value == string(VTODO)
			}
			stack = append(stack, f)
			continue
		case "END":
			if len(stack) == 0 {
				s.log.Debug().Int("line", lineNo+1).Msg("END with no matching BEGIN")
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.name != value {
				s.log.Debug().Str("expected", top.name).Str("got", value).Msg("mismatched END")
			}
			if top.collecting {
				if c, ok := top.component(); ok {
					out = append(out, c)
				} else {
					s.log.Debug().Str("kind", top.name).Msg("dropping component with no usable anchor")
				}
			}
			continue
		}

		if len(stack) == 0 || !stack[len(stack)-1].collecting {
			continue
		}
		top := stack[len(stack)-1]

		switch name {
		case "DTSTART":
			av, err := parseAnchorValue(value, params)
			if err != nil {
				s.log.Debug().Int("line", lineNo+1).Err(err).Msg("skipping malformed DTSTART")
				continue
			}
			top.dtstart = av
		case "DUE":
			av, err := parseAnchorValue(value, params)
			if err != nil {
				s.log.Debug().Int("line", lineNo+1).Err(err).Msg("skipping malformed DUE")
				continue
			}
			top.due = av
		case "RRULE":
			top.rrule = value
		case "UID":
			top.uid = value
		case "SUMMARY":
			top.summary = unescapeText(value)
		}
	}

	return out, nil
}

func (f *frame) component() (Component, bool) {
	kind := ComponentKind(f.name)

	var av *anchorValue
	switch kind {
	case VEVENT:
		av = f.dtstart
	case VTODO:
		av = f.due
		if av == nil {
			av = f.dtstart
		}
	default:
		return Component{}, false
	}
	if av == nil {
		return Component{}, false
	}

	return Component{
		Kind:     kind,
		Anchor:   av.t,
		TZID:     av.tzid,
		Floating: av.floating,
		RRule:    f.rrule,
		UID:      f.uid,
		Summary:  f.summary,
	}, true
}

// parseContentLine splits a single unfolded content line into its
// property name, parameters, and value, honoring RFC 5545 §3.2's
// quoted-parameter-value rule: a DQUOTE-delimited parameter value may
// itself contain ';' or ':' without ending the parameter list.
func parseContentLine(line string) (name string, params map[string][]string, value string, err error) {
	colon := findUnquotedColon(line)
	if colon < 0 {
		return "", nil, "", fmt.Errorf("ical: no unquoted ':' in %q", line)
	}
	head, value := line[:colon], line[colon+1:]

	segments := splitUnquotedSemicolons(head)
	if len(segments) == 0 || segments[0] == "" {
		return "", nil, "", fmt.Errorf("ical: empty property name")
	}
	name = strings.ToUpper(segments[0])

	params = make(map[string][]string, len(segments)-1)
	for _, seg := range segments[1:] {
		pname, pvalue, found := strings.Cut(seg, "=")
		if !found {
			return "", nil, "", fmt.Errorf("ical: malformed parameter %q", seg)
		}
		pname = strings.ToUpper(pname)
		pvalue = strings.Trim(pvalue, `"`)
		params[pname] = append(params[pname], pvalue)
	}

	return name, params, value, nil
}

// findUnquotedColon returns the index of the first ':' not inside a
// DQUOTE-delimited span, or -1 if there is none.
func findUnquotedColon(s string) int {
	inQuotes := false
	for i, r := range s {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ':':
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}

// splitUnquotedSemicolons splits s on ';' that fall outside a
// DQUOTE-delimited span.
func splitUnquotedSemicolons(s string) []string {
	var out []string
	inQuotes := false
	start := 0
	for i, r := range s {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ';':
			if !inQuotes {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}

// anchorLayouts are tried in order against a DTSTART/DUE value stripped
// of its trailing 'Z' marker (tracked separately).
var anchorLayouts = []string{
	"20060102T150405",
	"20060102",
}

func parseAnchorValue(value string, params map[string][]string) (*anchorValue, error) {
	utc := strings.HasSuffix(value, "Z")
	raw := strings.TrimSuffix(value, "Z")

	loc := time.UTC
	tzid := ""
	floating := false

	switch {
	case utc:
		tzid = "UTC"
	case len(params["TZID"]) > 0:
		tzid = params["TZID"][0]
		if l, err := time.LoadLocation(tzid); err == nil {
			loc = l
		}
		// An unresolvable TZID still yields a usable anchor: the wall
		// clock value is trustworthy even if the zone database lookup
		// failed, so parsing proceeds with loc left at time.UTC.
	default:
		floating = true
	}

	var t time.Time
	var err error
	for _, layout := range anchorLayouts {
		t, err = time.ParseInLocation(layout, raw, loc)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("ical: invalid date-time value %q: %w", value, err)
	}

	return &anchorValue{t: t, tzid: tzid, floating: floating}, nil
}

// unescapeText reverses the TEXT escaping RFC 5545 §3.3.11 defines for
// backslash, semicolon, comma, and newline.
func unescapeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			sb.WriteByte(s[i])
			continue
		}
		i++
		switch s[i] {
		case '\\', ';', ',':
			sb.WriteByte(s[i])
		case 'n', 'N':
			sb.WriteByte('\n')
		default:
			sb.WriteByte('\\')
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
