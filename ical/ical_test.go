package ical

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_VEventUTC(t *testing.T) {
	lines := []string{
		"BEGIN:VCALENDAR",
		"BEGIN:VEVENT",
		"UID:event-1@example.com",
		"SUMMARY:Weekly sync",
		"DTSTART:20240101T090000Z",
		"RRULE:FREQ=WEEKLY;COUNT=5",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)

	c := components[0]
	assert.Equal(t, VEVENT, c.Kind)
	assert.Equal(t, "event-1@example.com", c.UID)
	assert.Equal(t, "Weekly sync", c.Summary)
	assert.Equal(t, "FREQ=WEEKLY;COUNT=5", c.RRule)
	assert.Equal(t, "UTC", c.TZID)
	assert.False(t, c.Floating)
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), c.Anchor)
}

func TestScan_VEventWithTZID(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"DTSTART;TZID=America/New_York:20240101T090000",
		"RRULE:FREQ=DAILY;COUNT=3",
		"END:VEVENT",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)

	c := components[0]
	assert.Equal(t, "America/New_York", c.TZID)
	assert.False(t, c.Floating)
	loc, _ := time.LoadLocation("America/New_York")
	assert.Equal(t, time.Date(2024, 1, 1, 9, 0, 0, 0, loc), c.Anchor)
}

func TestScan_FloatingTime(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"DTSTART:20240101T090000",
		"END:VEVENT",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.True(t, components[0].Floating)
	assert.Equal(t, "", components[0].TZID)
}

func TestScan_VTodoDueFallsBackToDtstart(t *testing.T) {
	lines := []string{
		"BEGIN:VTODO",
		"DTSTART:20240101T000000Z",
		"END:VTODO",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, VTODO, components[0].Kind)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), components[0].Anchor)
}

func TestScan_VTodoPrefersDue(t *testing.T) {
	lines := []string{
		"BEGIN:VTODO",
		"DTSTART:20240101T000000Z",
		"DUE:20240105T000000Z",
		"END:VTODO",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), components[0].Anchor)
}

func TestScan_DropsComponentsWithoutAnchor(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"UID:no-anchor@example.com",
		"END:VEVENT",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	assert.Empty(t, components)
}

func TestScan_NestedValarmDoesNotConfuseNesting(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"DTSTART:20240101T090000Z",
		"BEGIN:VALARM",
		"ACTION:DISPLAY",
		"END:VALARM",
		"END:VEVENT",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)
}

func TestScan_QuotedTzidWithSemicolon(t *testing.T) {
	// A (synthetic, RFC-legal) quoted parameter value containing a ';'
	// must not be mistaken for a parameter separator.
	lines := []string{
		`BEGIN:VEVENT`,
		`DTSTART;TZID="Weird;Zone":20240101T090000`,
		`END:VEVENT`,
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "Weird;Zone", components[0].TZID)
}

func TestScan_MalformedPropertyIsSkippedNotFatal(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		"THIS LINE HAS NO COLON",
		"DTSTART:20240101T090000Z",
		"END:VEVENT",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)
}

func TestScanReader_UnfoldsContinuationLines(t *testing.T) {
	input := "BEGIN:VEVENT\r\n" +
		"SUMMARY:This is a long\r\n" +
		" summary that wraps\r\n" +
		"DTSTART:20240101T090000Z\r\n" +
		"END:VEVENT\r\n"

	components, err := ScanReader(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "This is a longsummary that wraps", components[0].Summary)
}

func TestScan_EscapedSummaryText(t *testing.T) {
	lines := []string{
		"BEGIN:VEVENT",
		`SUMMARY:Budget\, planning\; review`,
		"DTSTART:20240101T090000Z",
		"END:VEVENT",
	}

	components, err := Scan(lines)
	require.NoError(t, err)
	require.Len(t, components, 1)
	assert.Equal(t, "Budget, planning; review", components[0].Summary)
}
