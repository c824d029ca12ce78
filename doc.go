// Package rrule implements recurrence processing as defined by RFC 5545.
//
//	FREQ=WEEKLY;BYDAY=MO;INTERVAL=2
//
// would generate occurrences every other week on Monday.
//
// The package supports DAILY, WEEKLY, MONTHLY and YEARLY frequencies only;
// sub-daily frequencies (SECONDLY, MINUTELY, HOURLY) are rejected by Parse.
// EXDATE, RDATE and RECURRENCE-ID composition are not handled here — see
// the rrule/ical package for the narrow iCalendar envelope reader that
// hands this package its DTSTART and RRULE value.
package rrule
