// Package crosscheck cross-validates this module's occurrence engine
// against github.com/teambition/rrule-go on a sample of rules, as a
// second implementation witness rather than a source of truth. It is
// excluded from normal builds and tests by the crosscheck build tag — the
// dependency never ships in the default build.
//
//go:build crosscheck

package crosscheck

import (
	"fmt"
	"time"

	teamrrule "github.com/teambition/rrule-go"

	"github.com/ryandholt/rrule"
)

// weekdayTable maps this package's time.Weekday to teambition/rrule-go's
// Weekday value, used to translate an OrdinalWeekday into their ROption
// shape.
var weekdayTable = map[time.Weekday]teamrrule.Weekday{
	time.Monday:    teamrrule.MO,
	time.Tuesday:   teamrrule.TU,
	time.Wednesday: teamrrule.WE,
	time.Thursday:  teamrrule.TH,
	time.Friday:    teamrrule.FR,
	time.Saturday:  teamrrule.SA,
	time.Sunday:    teamrrule.SU,
}

var freqTable = map[rrule.Frequency]teamrrule.Frequency{
	rrule.Daily:   teamrrule.DAILY,
	rrule.Weekly:  teamrrule.WEEKLY,
	rrule.Monthly: teamrrule.MONTHLY,
	rrule.Yearly:  teamrrule.YEARLY,
}

// Compare runs r and its teambition/rrule-go equivalent over the same
// dtstart and takes up to n occurrences from each, returning a
// human-readable mismatch description, or "" if they agree.
func Compare(ruleText string, dtstart time.Time, n int) (string, error) {
	r, err := rrule.Parse(ruleText)
	if err != nil {
		return "", fmt.Errorf("crosscheck: parsing with rrule: %w", err)
	}

	ours, err := r.Occurrences(dtstart, n)
	if err != nil {
		return "", fmt.Errorf("crosscheck: enumerating with rrule: %w", err)
	}

	opt, err := toROption(r, dtstart)
	if err != nil {
		return "", fmt.Errorf("crosscheck: translating to teambition/rrule-go: %w", err)
	}
	theirs, err := teamrrule.NewRRule(opt)
	if err != nil {
		return "", fmt.Errorf("crosscheck: constructing teambition/rrule-go rule: %w", err)
	}
	theirOccurrences := theirs.All()
	if len(theirOccurrences) > n {
		theirOccurrences = theirOccurrences[:n]
	}

	if len(ours) != len(theirOccurrences) {
		return fmt.Sprintf("occurrence count mismatch: ours=%d theirs=%d", len(ours), len(theirOccurrences)), nil
	}
	for i := range ours {
		if !ours[i].Equal(theirOccurrences[i]) {
			return fmt.Sprintf("occurrence %d mismatch: ours=%s theirs=%s", i, ours[i], theirOccurrences[i]), nil
		}
	}
	return "", nil
}

func toROption(r *rrule.RRule, dtstart time.Time) (teamrrule.ROption, error) {
	freq, ok := freqTable[r.Freq]
	if !ok {
		return teamrrule.ROption{}, fmt.Errorf("unsupported frequency %v", r.Freq)
	}

	opt := teamrrule.ROption{
		Freq:     freq,
		Dtstart:  dtstart,
		Interval: r.Interval,
		Wkst:     weekdayTable[r.WKST],
	}
	if r.Count != nil {
		opt.Count = *r.Count
	}
	if r.Until != nil {
		opt.Until = *r.Until
	}
	opt.Bymonth = append(opt.Bymonth, r.ByMonth...)
	opt.Bymonthday = append(opt.Bymonthday, r.ByMonthDay...)
	opt.Byweekno = append(opt.Byweekno, r.ByWeekNo...)
	opt.BySetPos = append(opt.BySetPos, r.BySetPos...)
	for _, ow := range r.ByDay {
		wd, ok := weekdayTable[ow.Weekday]
		if !ok {
			return teamrrule.ROption{}, fmt.Errorf("unsupported weekday %v", ow.Weekday)
		}
		if ow.Position != 0 {
			wd = wd.Nth(ow.Position)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}

	return opt, nil
}
