package rrule

import (
	"sort"
	"time"

	"github.com/ryandholt/rrule/calendar"
)

// monthSubPeriodCandidates computes, for a single concrete (year, month),
// the ordered set of dates that satisfy BYMONTHDAY and BYDAY (or, with
// neither, the anchor's day-of-month); BYMONTH, BYWEEKNO and BYSETPOS are
// not applied here. It is the shared core behind both MONTHLY enumeration and
// each per-month sub-period of a YEARLY+BYMONTH rule.
func monthSubPeriodCandidates(r *RRule, year int, month time.Month, anchor time.Time) []time.Time {
	loc := anchor.Location()

	switch {
	case len(r.ByMonthDay) > 0:
		days := make([]time.Time, 0, len(r.ByMonthDay))
		for _, spec := range r.ByMonthDay {
			if d, ok := calendar.ResolveMonthDay(year, month, spec); ok {
				days = append(days, time.Date(year, month, d, 0, 0, 0, 0, loc))
			}
		}
		if len(r.ByDay) > 0 {
			days = filterByBareWeekday(days, r.ByDay)
		}
		// Two specs can name the same day (e.g. 1 and -31 in a 31-day
		// month), so dedupe as well as sort.
		return sortDedupe(days)

	case len(r.ByDay) > 0:
		return monthlyOrdinalWeekdayDates(year, month, loc, r.ByDay)

	default:
		d, ok := calendar.ResolveMonthDay(year, month, anchor.Day())
		if !ok {
			return nil
		}
		return []time.Time{time.Date(year, month, d, 0, 0, 0, 0, loc)}
	}
}

// monthlyOrdinalWeekdayDates resolves a BYDAY list against a concrete
// month: a bare weekday (Position 0) matches every occurrence in the
// month; an ordinal position picks the Nth (or Nth-from-end) occurrence,
// contributing nothing if the month doesn't have that many.
func monthlyOrdinalWeekdayDates(year int, month time.Month, loc *time.Location, byDay []OrdinalWeekday) []time.Time {
	length := calendar.DaysInMonth(year, month)

	var out []time.Time
	for _, ow := range byDay {
		var matches []time.Time
		for day := 1; day <= length; day++ {
			d := time.Date(year, month, day, 0, 0, 0, 0, loc)
			if d.Weekday() == ow.Weekday {
				matches = append(matches, d)
			}
		}
		if ow.Position == 0 {
			out = append(out, matches...)
			continue
		}
		idx := ow.Position - 1
		if ow.Position < 0 {
			idx = len(matches) + ow.Position
		}
		if idx >= 0 && idx < len(matches) {
			out = append(out, matches[idx])
		}
	}
	return sortDedupe(out)
}

// dailyCandidates returns day itself, or nothing, per the BYMONTH/BYDAY
// filters a DAILY rule may carry. BYMONTHDAY is rejected for DAILY at
// Rule construction, so it is never consulted here.
func dailyCandidates(r *RRule, day time.Time) []time.Time {
	if len(r.ByMonth) > 0 && !monthIn(day.Month(), r.ByMonth) {
		return nil
	}
	if len(r.ByDay) > 0 && !weekdayIn(day.Weekday(), r.ByDay) {
		return nil
	}
	return []time.Time{day}
}

// weeklyCandidates returns the dates within the 7-day span starting at
// weekStart that satisfy BYMONTH (if present) and BYDAY (if present,
// matched on weekday only — an ordinal prefix has no meaning at WEEKLY
// frequency and is ignored here per spec invariant 6). With no BYDAY, the
// single date matching anchor's weekday is the week's only candidate.
func weeklyCandidates(r *RRule, weekStart time.Time, anchor time.Time) []time.Time {
	var out []time.Time
	for i := 0; i < 7; i++ {
		d := weekStart.AddDate(0, 0, i)
		if len(r.ByMonth) > 0 && !monthIn(d.Month(), r.ByMonth) {
			continue
		}
		if len(r.ByDay) > 0 {
			if !weekdayIn(d.Weekday(), r.ByDay) {
				continue
			}
		} else if d.Weekday() != anchor.Weekday() {
			continue
		}
		out = append(out, d)
	}
	return out
}

// monthlyFreqCandidates wraps monthSubPeriodCandidates with the BYMONTH
// global filter a plain MONTHLY rule (as opposed to a YEARLY+BYMONTH
// sub-period, where the month was already selected by BYMONTH) still
// needs to honor.
func monthlyFreqCandidates(r *RRule, year int, month time.Month, anchor time.Time) []time.Time {
	if len(r.ByMonth) > 0 && !monthIn(month, r.ByMonth) {
		return nil
	}
	return monthSubPeriodCandidates(r, year, month, anchor)
}

// yearlyCandidates returns the sub-periods (one slice per sub-period) a
// YEARLY rule expands to for the given year. BYSETPOS, when present, is
// applied independently within each returned sub-period, except in the
// bare-BYDAY and no-BY-filter cases, which yield the whole year as a
// single sub-period per spec.md §4.4.4 ("otherwise the whole frequency
// period is the sub-period").
func yearlyCandidates(r *RRule, year int, anchor time.Time) [][]time.Time {
	loc := anchor.Location()

	switch {
	case len(r.ByMonth) > 0:
		months := sortedUniqueInts(r.ByMonth)
		subPeriods := make([][]time.Time, 0, len(months))
		for _, m := range months {
			subPeriods = append(subPeriods, monthSubPeriodCandidates(r, year, time.Month(m), anchor))
		}
		return subPeriods

	case len(r.ByWeekNo) > 0:
		weeks := resolveWeekNumbers(year, r.ByWeekNo)
		subPeriods := make([][]time.Time, 0, len(weeks))
		for _, w := range weeks {
			subPeriods = append(subPeriods, weekNoSubPeriodCandidates(r, year, w, anchor))
		}
		return subPeriods

	case len(r.ByMonthDay) > 0:
		// spec.md §4.4.3: "concrete days within the anchor's month for
		// each year" — BYMONTHDAY without BYMONTH restricts expansion
		// to the anchor's own month, every year.
		return [][]time.Time{monthSubPeriodCandidates(r, year, anchor.Month(), anchor)}

	case len(r.ByDay) > 0:
		var all []time.Time
		for m := time.January; m <= time.December; m++ {
			all = append(all, monthlyOrdinalWeekdayDates(year, m, loc, r.ByDay)...)
		}
		sortTimes(all)
		return [][]time.Time{all}

	default:
		d, ok := calendar.ResolveMonthDay(year, anchor.Month(), anchor.Day())
		if !ok {
			return [][]time.Time{nil}
		}
		return [][]time.Time{{time.Date(year, anchor.Month(), d, 0, 0, 0, 0, loc)}}
	}
}

// weekNoSubPeriodCandidates resolves a single (already-disambiguated,
// positive) ISO week number within isoYear to the dates matching either
// the anchor's weekday (bare BYWEEKNO) or each bare BYDAY weekday (when
// BYDAY accompanies BYWEEKNO — validateCombination already rejects any
// ordinal-qualified BYDAY in that combination).
func weekNoSubPeriodCandidates(r *RRule, isoYear, week int, anchor time.Time) []time.Time {
	weekdays := bareWeekdaysOf(r.ByDay)
	if len(weekdays) == 0 {
		weekdays = []time.Weekday{anchor.Weekday()}
	}

	loc := anchor.Location()
	var out []time.Time
	for _, wd := range weekdays {
		if d, ok := calendar.ResolveYearWeekday(isoYear, week, wd); ok {
			out = append(out, time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc))
		}
	}
	return sortDedupe(out)
}

// resolveWeekNumbers converts a BYWEEKNO list (which may contain negative,
// from-the-end positions) into the set of concrete, in-range ISO week
// numbers for isoYear, ascending and deduplicated. A week number that
// doesn't exist in isoYear (typically 53) is silently dropped, which is
// how a BYWEEKNO=53 rule skips years lacking a week 53.
func resolveWeekNumbers(isoYear int, byWeekNo []int) []int {
	total := 52
	if calendar.YearHasISOWeek53(isoYear) {
		total = 53
	}
	seen := make(map[int]bool, len(byWeekNo))
	for _, w := range byWeekNo {
		n := w
		if n < 0 {
			n = total + n + 1
		}
		if n < 1 || n > total {
			continue
		}
		seen[n] = true
	}
	out := make([]int, 0, len(seen))
	for w := range seen {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}

// selectBySetPos applies the BYSETPOS index list to an ascending
// candidate slice: +k picks the k-th element (1-based), -k picks the k-th
// from the end. Out-of-range indices are silently discarded.
func selectBySetPos(candidates []time.Time, positions []int) []time.Time {
	n := len(candidates)
	if n == 0 {
		return nil
	}
	var out []time.Time
	for _, p := range positions {
		idx := p - 1
		if p < 0 {
			idx = n + p
		}
		if idx < 0 || idx >= n {
			continue
		}
		out = append(out, candidates[idx])
	}
	return out
}

// bareWeekdaysOf extracts the time.Weekday of every OrdinalWeekday with
// Position == 0. Ordinal entries are excluded by the caller's invariant
// checks before this is ever reached in the BYWEEKNO path.
func bareWeekdaysOf(byDay []OrdinalWeekday) []time.Weekday {
	out := make([]time.Weekday, 0, len(byDay))
	for _, ow := range byDay {
		if ow.Position == 0 {
			out = append(out, ow.Weekday)
		}
	}
	return out
}

func filterByBareWeekday(days []time.Time, byDay []OrdinalWeekday) []time.Time {
	wanted := make(map[time.Weekday]bool, len(byDay))
	for _, ow := range byDay {
		wanted[ow.Weekday] = true
	}
	out := days[:0:0]
	for _, d := range days {
		if wanted[d.Weekday()] {
			out = append(out, d)
		}
	}
	return out
}

func monthIn(month time.Month, months []int) bool {
	for _, m := range months {
		if time.Month(m) == month {
			return true
		}
	}
	return false
}

func weekdayIn(wd time.Weekday, byDay []OrdinalWeekday) bool {
	for _, ow := range byDay {
		if ow.Weekday == wd {
			return true
		}
	}
	return false
}

func sortedUniqueInts(ns []int) []int {
	seen := make(map[int]bool, len(ns))
	out := make([]int, 0, len(ns))
	for _, n := range ns {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}

func sortTimes(ts []time.Time) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].Before(ts[j]) })
}

func sortDedupe(ts []time.Time) []time.Time {
	if len(ts) == 0 {
		return ts
	}
	sortTimes(ts)
	out := ts[:1]
	for _, t := range ts[1:] {
		if !t.Equal(out[len(out)-1]) {
			out = append(out, t)
		}
	}
	return out
}

// filterAtOrAfter drops every date strictly before floor, preserving
// order. Used only for the period containing the anchor, per spec.md
// §4.4.4's start-date handling.
func filterAtOrAfter(ts []time.Time, floor time.Time) []time.Time {
	out := ts[:0:0]
	for _, t := range ts {
		if !t.Before(floor) {
			out = append(out, t)
		}
	}
	return out
}
