//go:build crosscheck

package crosscheck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_AgreesOnSampleRules(t *testing.T) {
	cases := []struct {
		name    string
		rule    string
		dtstart time.Time
	}{
		{"daily count", "FREQ=DAILY;COUNT=10", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"weekly byday", "FREQ=WEEKLY;BYDAY=MO,WE,FR;COUNT=10", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{"monthly bymonthday", "FREQ=MONTHLY;BYMONTHDAY=15;COUNT=10", time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)},
		{"yearly bymonth byday", "FREQ=YEARLY;BYMONTH=11;BYDAY=4TH;COUNT=5", time.Date(2024, 11, 28, 9, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mismatch, err := Compare(tc.rule, tc.dtstart, 10)
			require.NoError(t, err)
			assert.Empty(t, mismatch)
		})
	}
}
