// Package testdata loads the YAML-encoded occurrence scenarios shared by
// this module's table-driven tests.
package testdata

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Scenario is one named recurrence check: an RRULE value, the anchor it
// recurs from, and the RFC3339 occurrences it must produce.
type Scenario struct {
	Name    string   `yaml:"name"`
	Rule    string   `yaml:"rule"`
	Dtstart string   `yaml:"dtstart"`
	Want    []string `yaml:"want"`
}

type fixtureFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load parses the embedded fixtures.yaml into its Scenario list.
func Load() ([]Scenario, error) {
	var f fixtureFile
	if err := yaml.Unmarshal(fixturesYAML, &f); err != nil {
		return nil, fmt.Errorf("testdata: parsing fixtures.yaml: %w", err)
	}
	return f.Scenarios, nil
}

// DtstartTime parses s.Dtstart as RFC3339, the format every fixture uses.
func (s Scenario) DtstartTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s.Dtstart)
	if err != nil {
		return time.Time{}, fmt.Errorf("testdata: parsing dtstart %q: %w", s.Dtstart, err)
	}
	return t, nil
}
