package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeap(t *testing.T) {
	assert.True(t, IsLeap(2000))
	assert.True(t, IsLeap(2024))
	assert.False(t, IsLeap(1900))
	assert.False(t, IsLeap(2023))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.January))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestResolveMonthDay(t *testing.T) {
	d, ok := ResolveMonthDay(2024, time.February, -1)
	require.True(t, ok)
	assert.Equal(t, 29, d)

	d, ok = ResolveMonthDay(2023, time.February, -1)
	require.True(t, ok)
	assert.Equal(t, 28, d)

	_, ok = ResolveMonthDay(2024, time.February, 31)
	assert.False(t, ok)

	_, ok = ResolveMonthDay(2024, time.April, 31)
	assert.False(t, ok)

	d, ok = ResolveMonthDay(2024, time.April, 30)
	require.True(t, ok)
	assert.Equal(t, 30, d)
}

func TestYearHasISOWeek53(t *testing.T) {
	assert.True(t, YearHasISOWeek53(2020))
	assert.True(t, YearHasISOWeek53(2026))
	assert.True(t, YearHasISOWeek53(2032))
	assert.False(t, YearHasISOWeek53(2021))
	assert.False(t, YearHasISOWeek53(2025))
}

func TestFirstMondayOfISOWeek(t *testing.T) {
	mon := FirstMondayOfISOWeek(2024, 1)
	y, w := mon.ISOWeek()
	assert.Equal(t, 2024, y)
	assert.Equal(t, 1, w)
	assert.Equal(t, time.Monday, mon.Weekday())
}

func TestResolveYearWeekday(t *testing.T) {
	d, ok := ResolveYearWeekday(2020, 53, time.Wednesday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2020, time.December, 30, 0, 0, 0, 0, time.UTC), d)

	_, ok = ResolveYearWeekday(2021, 53, time.Wednesday)
	assert.False(t, ok)
}
