package rrule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryandholt/rrule"
	"github.com/ryandholt/rrule/testdata"
)

// TestFixtures runs the scenarios shared with testdata/fixtures.yaml
// through the public API, so the YAML fixtures stay load-bearing rather
// than merely decorative.
func TestFixtures(t *testing.T) {
	scenarios, err := testdata.Load()
	require.NoError(t, err)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			dtstart, err := s.DtstartTime()
			require.NoError(t, err)

			rule, err := rrule.Parse(s.Rule)
			require.NoError(t, err)

			occurrences, err := rule.Occurrences(dtstart, len(s.Want))
			require.NoError(t, err)

			got := make([]string, len(occurrences))
			for i, o := range occurrences {
				got[i] = o.Format("2006-01-02T15:04:05Z07:00")
			}
			assert.Equal(t, s.Want, got)
		})
	}
}
