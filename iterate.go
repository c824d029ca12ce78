package rrule

import (
	"iter"
	"time"
)

// maxConsecutiveEmptyPeriods bounds how many successive periods the
// engine will advance through without producing a single occurrence
// before giving up. It guards against rules that are syntactically valid
// but select a position or date that can never exist (e.g. a BYSETPOS
// index permanently out of range for its expansion).
const maxConsecutiveEmptyPeriods = 50

// All returns a lazy, strictly-increasing sequence of the date-times rule
// r denotes, anchored at dtstart. Every yielded value carries dtstart's
// time-of-day; the anchor itself is only yielded when it satisfies every
// BY-filter. The sequence never restarts — call All again for a fresh
// traversal.
func (r *RRule) All(dtstart time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		r.enumerate(dtstart, 0, yield)
	}
}

// Occurrences materializes up to limit occurrences of r starting at
// dtstart. limit must be positive unless r carries a COUNT or UNTIL —
// without one of the three, Occurrences refuses to run rather than risk
// an effectively unbounded allocation.
func (r *RRule) Occurrences(dtstart time.Time, limit int) ([]time.Time, error) {
	if limit <= 0 && r.Count == nil && r.Until == nil {
		return nil, ErrUnboundedOccurrences
	}
	var out []time.Time
	r.enumerate(dtstart, limit, func(t time.Time) bool {
		out = append(out, t)
		return true
	})
	return out, nil
}

// Between returns every occurrence of r anchored at dtstart that falls
// within [rangeStart, rangeEnd], inclusive on both ends, streaming
// through the same enumeration All uses and stopping as soon as an
// occurrence strictly exceeds rangeEnd.
func (r *RRule) Between(dtstart, rangeStart, rangeEnd time.Time) []time.Time {
	var out []time.Time
	r.enumerate(dtstart, 0, func(t time.Time) bool {
		if t.After(rangeEnd) {
			return false
		}
		if !t.Before(rangeStart) {
			out = append(out, t)
		}
		return true
	})
	return out
}

// enumerate drives occurrence generation for r anchored at dtstart,
// calling yield for each occurrence in increasing order until yield
// returns false, limit (if > 0) occurrences have been produced, COUNT or
// UNTIL terminate the rule, or the empty-period safety valve fires.
func (r *RRule) enumerate(dtstart time.Time, limit int, yield func(time.Time) bool) {
	if r.Count != nil && *r.Count == 0 {
		return
	}

	maxCount := -1
	if r.Count != nil {
		maxCount = *r.Count
	}

	loc := dtstart.Location()
	anchorDate := dateOnly(dtstart, loc)

	cursor := newPeriodCursor(r, dtstart)
	emitted := 0
	emptyPeriods := 0
	firstPeriod := true

	for {
		periodCandidates := cursor.resolve(r, anchorDate, firstPeriod)
		firstPeriod = false

		if len(periodCandidates) == 0 {
			emptyPeriods++
			if emptyPeriods >= maxConsecutiveEmptyPeriods {
				return
			}
		} else {
			emptyPeriods = 0
		}

		for _, d := range periodCandidates {
			occ := attachTime(d, dtstart)
			if r.Until != nil && occ.After(*r.Until) {
				return
			}
			if !yield(occ) {
				return
			}
			emitted++
			if maxCount >= 0 && emitted >= maxCount {
				return
			}
			if limit > 0 && emitted >= limit {
				return
			}
		}

		cursor.advance(r)
	}
}

// dateOnly truncates t to midnight in loc, discarding the time-of-day
// component that every occurrence will later inherit from the anchor.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// attachTime re-attaches anchor's wall-clock time-of-day to the
// date-only value d, which is how every strategy preserves
// spec.md §4.4.1's "time of day is always the anchor's" contract.
func attachTime(d, anchor time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(),
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(),
		anchor.Location())
}

// periodCursor walks the calendar period a Frequency advances through:
// a day for DAILY, a WKST-aligned week for WEEKLY, a (year, month) pair
// for MONTHLY, a year for YEARLY. It owns no state beyond its current
// position — no caches survive past the end of enumeration, per spec.md
// §5's no-shared-state contract.
type periodCursor struct {
	freq  Frequency
	day   time.Time // DAILY: the day. WEEKLY: the WKST-aligned week start.
	year  int       // MONTHLY / YEARLY
	month time.Month
}

func newPeriodCursor(r *RRule, dtstart time.Time) *periodCursor {
	loc := dtstart.Location()
	switch r.Freq {
	case Daily:
		return &periodCursor{freq: Daily, day: dateOnly(dtstart, loc)}
	case Weekly:
		return &periodCursor{freq: Weekly, day: weekStartFor(dtstart, r.WKST, loc)}
	case Monthly:
		return &periodCursor{freq: Monthly, year: dtstart.Year(), month: dtstart.Month()}
	case Yearly:
		return &periodCursor{freq: Yearly, year: dtstart.Year()}
	default:
		// Unreachable: Parse/NewRRule reject any other frequency via
		// validateCombination before an RRule can reach the engine.
		panic("rrule: unsupported frequency reached the engine")
	}
}

// resolve computes the fully-selected (BYSETPOS applied, if present)
// candidate list for the cursor's current period, filtering to
// at-or-after anchor when this is the first period enumerate visits.
func (c *periodCursor) resolve(r *RRule, anchor time.Time, firstPeriod bool) []time.Time {
	subPeriods := c.subPeriods(r, anchor)

	var selected []time.Time
	for _, sp := range subPeriods {
		if firstPeriod {
			sp = filterAtOrAfter(sp, anchor)
		}
		if len(r.BySetPos) > 0 {
			selected = append(selected, selectBySetPos(sp, r.BySetPos)...)
		} else {
			selected = append(selected, sp...)
		}
	}

	if len(r.BySetPos) > 0 {
		selected = sortDedupe(selected)
	}
	return selected
}

func (c *periodCursor) subPeriods(r *RRule, anchor time.Time) [][]time.Time {
	switch c.freq {
	case Daily:
		return [][]time.Time{dailyCandidates(r, c.day)}
	case Weekly:
		return [][]time.Time{weeklyCandidates(r, c.day, anchor)}
	case Monthly:
		return [][]time.Time{monthlyFreqCandidates(r, c.year, c.month, anchor)}
	case Yearly:
		return yearlyCandidates(r, c.year, anchor)
	default:
		panic("rrule: unsupported frequency reached the engine")
	}
}

func (c *periodCursor) advance(r *RRule) {
	switch c.freq {
	case Daily:
		c.day = c.day.AddDate(0, 0, r.Interval)
	case Weekly:
		c.day = c.day.AddDate(0, 0, 7*r.Interval)
	case Monthly:
		total := int(c.month) - 1 + r.Interval
		c.year += total / 12
		c.month = time.Month(total%12 + 1)
	case Yearly:
		c.year += r.Interval
	}
}

// weekStartFor returns the date of the most recent (or current) wkst
// weekday at or before dtstart's calendar date, i.e. the start of the
// week dtstart falls in under the given week-start convention.
func weekStartFor(dtstart time.Time, wkst time.Weekday, loc *time.Location) time.Time {
	d := dateOnly(dtstart, loc)
	offset := int(d.Weekday()) - int(wkst)
	if offset < 0 {
		offset += 7
	}
	return d.AddDate(0, 0, -offset)
}
