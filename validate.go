package rrule

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// parseFreq validates the FREQ parameter. Case is significant; only the
// four frequencies this engine enumerates are accepted — SECONDLY,
// MINUTELY and HOURLY are syntactically valid RFC 5545 but out of scope
// for this package (see doc.go).
func parseFreq(value string) (Frequency, error) {
	switch value {
	case "DAILY":
		return Daily, nil
	case "WEEKLY":
		return Weekly, nil
	case "MONTHLY":
		return Monthly, nil
	case "YEARLY":
		return Yearly, nil
	case "SECONDLY", "MINUTELY", "HOURLY":
		return 0, newValidationError("FREQ", value, "sub-daily frequencies are not supported")
	default:
		return 0, newValidationError("FREQ", value, "must be one of DAILY, WEEKLY, MONTHLY, YEARLY")
	}
}

// parseInterval validates INTERVAL: a non-empty decimal integer >= 0.
// Zero is accepted here for fixture compatibility; Rrule construction
// normalizes it to 1 (spec Open Question #1).
func parseInterval(value string) (int, error) {
	n, err := parseNonNegativeInt(value)
	if err != nil {
		return 0, newValidationError("INTERVAL", value, "must be a non-negative integer")
	}
	return n, nil
}

// parseCount validates COUNT: a non-negative integer. Zero is a valid
// sentinel meaning "the rule produces no occurrences".
func parseCount(value string) (int, error) {
	n, err := parseNonNegativeInt(value)
	if err != nil {
		return 0, newValidationError("COUNT", value, "must be a non-negative integer")
	}
	return n, nil
}

// untilPattern matches the mandatory-UTC UNTIL encoding this package
// requires: YYYYMMDDTHHMMSSZ.
var untilPattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})T(\d{2})(\d{2})(\d{2})Z$`)

// parseUntil validates UNTIL. The trailing Z is mandatory and the numeric
// fields must denote a real Gregorian UTC instant.
func parseUntil(value string) (time.Time, error) {
	m := untilPattern.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, newValidationError("UNTIL", value, "must match YYYYMMDDTHHMMSSZ")
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	second, _ := strconv.Atoi(m[6])

	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	// time.Date silently normalizes out-of-range fields (e.g. Feb 30 ->
	// Mar 2); reject any value that doesn't round-trip, which catches
	// non-existent calendar dates and invalid hour/minute/second ranges.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hour || t.Minute() != minute || t.Second() != second {
		return time.Time{}, newValidationError("UNTIL", value, "is not a real Gregorian UTC date-time")
	}
	return t, nil
}

// byDayPattern matches a single BYDAY item: an optional signed 1-2 digit
// ordinal followed by a two-letter weekday code.
var byDayPattern = regexp.MustCompile(`^([+-]?\d{1,2})?(MO|TU|WE|TH|FR|SA|SU)$`)

// parseByDay validates the comma-separated BYDAY list.
func parseByDay(value string) ([]OrdinalWeekday, error) {
	items := strings.Split(value, ",")
	out := make([]OrdinalWeekday, 0, len(items))
	for _, item := range items {
		if item == "" {
			return nil, newValidationError("BYDAY", value, "contains an empty item")
		}
		m := byDayPattern.FindStringSubmatch(item)
		if m == nil {
			return nil, newValidationError("BYDAY", item, "must be [+-]?[0-9]{1,2}?(MO|TU|WE|TH|FR|SA|SU)")
		}
		position := 0
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, newValidationError("BYDAY", item, "ordinal position is not a valid integer")
			}
			if n == 0 {
				return nil, newValidationError("BYDAY", item, "ordinal position 0 is not allowed")
			}
			if n < -53 || n > 53 {
				return nil, newValidationError("BYDAY", item, "ordinal position must be within [-53,-1] or [1,53]")
			}
			position = n
		}
		out = append(out, OrdinalWeekday{Position: position, Weekday: weekdayCodes[m[2]]})
	}
	return out, nil
}

// parseByMonthDay validates the comma-separated BYMONTHDAY list:
// integers in [-31,-1] union [1,31].
func parseByMonthDay(value string) ([]int, error) {
	return parseIntListInRanges("BYMONTHDAY", value, -31, -1, 1, 31)
}

// parseByMonth validates the comma-separated BYMONTH list: integers in [1,12].
func parseByMonth(value string) ([]int, error) {
	return parseIntListInRanges("BYMONTH", value, 1, 12, 1, 12)
}

// parseByWeekNo validates the comma-separated BYWEEKNO list: integers in
// [-53,-1] union [1,53].
func parseByWeekNo(value string) ([]int, error) {
	return parseIntListInRanges("BYWEEKNO", value, -53, -1, 1, 53)
}

// parseBySetPos validates the comma-separated BYSETPOS list: integers in
// [-366,-1] union [1,366].
func parseBySetPos(value string) ([]int, error) {
	return parseIntListInRanges("BYSETPOS", value, -366, -1, 1, 366)
}

// parseWKST validates WKST: one of the seven two-letter weekday codes.
func parseWKST(value string) (time.Weekday, error) {
	wd, ok := weekdayCodes[value]
	if !ok {
		return 0, newValidationError("WKST", value, "must be one of MO, TU, WE, TH, FR, SA, SU")
	}
	return wd, nil
}

// parseNonNegativeInt rejects whitespace, signs, and anything that isn't
// a plain non-negative decimal integer.
func parseNonNegativeInt(value string) (int, error) {
	if value == "" || strings.TrimSpace(value) != value {
		return 0, errBadInt
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return 0, errBadInt
		}
	}
	return strconv.Atoi(value)
}

var errBadInt = newValidationError("", "", "not a non-negative integer")

// parseIntListInRanges validates a comma-separated integer list where
// each element must fall in [negLo,negHi] or [posLo,posHi]. param names
// the RRULE parameter for error reporting.
func parseIntListInRanges(paramName, value string, negLo, negHi, posLo, posHi int) ([]int, error) {
	items := strings.Split(value, ",")
	out := make([]int, 0, len(items))
	for _, item := range items {
		if item == "" || strings.TrimSpace(item) != item {
			return nil, newValidationError(paramName, value, "contains an empty or whitespace-padded item")
		}
		n, err := strconv.Atoi(item)
		if err != nil {
			return nil, newValidationError(paramName, item, "is not an integer")
		}
		if n == 0 {
			return nil, newValidationError(paramName, item, "0 is not allowed")
		}
		inNeg := n >= negLo && n <= negHi
		inPos := n >= posLo && n <= posHi
		if !inNeg && !inPos {
			return nil, newValidationError(paramName, item, "out of range")
		}
		out = append(out, n)
	}
	return out, nil
}
