package testdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	scenarios, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		t.Run(s.Name, func(t *testing.T) {
			assert.NotEmpty(t, s.Rule)
			_, err := s.DtstartTime()
			assert.NoError(t, err)
			assert.NotEmpty(t, s.Want)
		})
	}
}
