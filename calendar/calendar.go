// Package calendar implements the pure Gregorian/ISO-8601 calendar
// primitives the rrule occurrence engine is built on. Every function here
// is a total or explicitly-partial function of its inputs; none of them
// touch a clock, a locale, or any package-level mutable state.
package calendar

import "time"

// daysInMonthList is the non-leap-year day count for each calendar month,
// 1-indexed so daysInMonthList[month] works directly.
var daysInMonthList = [...]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year, 28 through 31.
func DaysInMonth(year int, month time.Month) int {
	if month == time.February && IsLeap(year) {
		return 29
	}
	return daysInMonthList[month]
}

// WeekdayOf returns the weekday of t's calendar date.
func WeekdayOf(t time.Time) time.Weekday {
	return t.Weekday()
}

// ISOWeekOf returns the ISO-8601 week-numbering year and week number for t.
// This is a named wrapper around time.Time.ISOWeek so the engine has a
// single primitive to depend on rather than reaching into time directly
// for week arithmetic.
func ISOWeekOf(t time.Time) (isoYear, week int) {
	return t.ISOWeek()
}

// YearHasISOWeek53 reports whether the ISO-8601 week-numbering year
// isoYear contains a week 53. An ISO year has 53 weeks iff 1 January falls
// on a Thursday, or it is a leap year and 1 January falls on a Wednesday.
func YearHasISOWeek53(isoYear int) bool {
	jan1 := time.Date(isoYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch jan1.Weekday() {
	case time.Thursday:
		return true
	case time.Wednesday:
		return IsLeap(isoYear)
	default:
		return false
	}
}

// FirstMondayOfISOWeek returns the Monday that begins ISO week `week` of
// ISO-week-year isoYear. Callers are responsible for checking
// YearHasISOWeek53 before asking for week 53.
func FirstMondayOfISOWeek(isoYear, week int) time.Time {
	// Jan 4th always falls in ISO week 1 of its year (RFC 3339 / ISO 8601).
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	// Back up to the Monday of jan4's week.
	offset := int(jan4.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	week1Monday := jan4.AddDate(0, 0, -offset)
	return week1Monday.AddDate(0, 0, (week-1)*7)
}

// ResolveMonthDay resolves a possibly-negative day-of-month spec (as used
// by BYMONTHDAY) against a concrete year/month. A negative day counts from
// the end of the month: -1 is the last day, -2 the second-to-last, etc.
// ok is false when the month has fewer than |day| days, or day is 0.
func ResolveMonthDay(year int, month time.Month, day int) (resolved int, ok bool) {
	if day == 0 {
		return 0, false
	}
	length := DaysInMonth(year, month)
	if day > 0 {
		if day > length {
			return 0, false
		}
		return day, true
	}
	resolved = length + day + 1
	if resolved < 1 {
		return 0, false
	}
	return resolved, true
}

// ResolveYearWeekday returns the date within ISO week `week` of isoYear
// that falls on weekday wd. ok is false when isoYear lacks that week
// (e.g. week 53 in a 52-week year).
func ResolveYearWeekday(isoYear, week int, wd time.Weekday) (time.Time, bool) {
	if week == 53 && !YearHasISOWeek53(isoYear) {
		return time.Time{}, false
	}
	monday := FirstMondayOfISOWeek(isoYear, week)
	offset := int(wd) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return monday.AddDate(0, 0, offset), true
}

// NormalizeWeekday maps time.Weekday (Sunday=0) onto the ISO index where
// Monday=1..Sunday=7, which is the ordering BYDAY/WKST reason about.
func NormalizeWeekday(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}

// DaysUntilWeekday returns the non-negative number of days from wd `from`
// to wd `to`, stepping forward through the week (0 when from == to).
func DaysUntilWeekday(from, to time.Weekday) int {
	diff := int(to) - int(from)
	if diff < 0 {
		diff += 7
	}
	return diff
}
