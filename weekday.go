package rrule

import (
	"fmt"
	"time"
)

// weekdayCodes maps the RFC 5545 two-letter weekday code to time.Weekday.
var weekdayCodes = map[string]time.Weekday{
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
	"SU": time.Sunday,
}

// weekdayNames is the inverse of weekdayCodes, used by String().
var weekdayNames = map[time.Weekday]string{
	time.Monday:    "MO",
	time.Tuesday:   "TU",
	time.Wednesday: "WE",
	time.Thursday:  "TH",
	time.Friday:    "FR",
	time.Saturday:  "SA",
	time.Sunday:    "SU",
}

// OrdinalWeekday is a single BYDAY entry: a weekday with an optional
// ordinal position within the enclosing period. Position == 0 means
// "every occurrence of this weekday in the period".
type OrdinalWeekday struct {
	Position int
	Weekday  time.Weekday
}

// String renders the canonical RFC 5545 BYDAY item text, e.g. "2MO",
// "-1FR", or "TU" when Position is 0.
func (ow OrdinalWeekday) String() string {
	code, ok := weekdayNames[ow.Weekday]
	if !ok {
		panic(fmt.Sprintf("rrule: %v is not a valid RFC 5545 weekday", ow.Weekday))
	}
	if ow.Position == 0 {
		return code
	}
	return fmt.Sprintf("%d%s", ow.Position, code)
}
