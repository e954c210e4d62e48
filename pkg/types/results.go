package types

import (
	"fmt"
)

// Conversion is the outcome of a single encode or decode
type Conversion struct {
	Input     string `yaml:"input" json:"input"`
	Output    string `yaml:"output" json:"output"`
	Canonical bool   `yaml:"canonical" json:"canonical"` // numeral side is in canonical form
}

// Check is the outcome of a character-set validation
type Check struct {
	Candidate  string `yaml:"candidate" json:"candidate"`
	Alphabet   string `yaml:"alphabet" json:"alphabet"`
	Acceptable bool   `yaml:"acceptable" json:"acceptable"`
}

// DemoSamples lists the sample invocations run by `roman demo`
type DemoSamples struct {
	Decode []string      `yaml:"decode" json:"decode"`
	Encode []int         `yaml:"encode" json:"encode"`
	Check  []CheckSample `yaml:"check" json:"check"`
}

// CheckSample is a [candidate, alphabet] pair. Values are kept untyped so the
// validator sees whatever the document contained.
type CheckSample struct {
	Candidate any `yaml:"-" json:"candidate"`
	Alphabet  any `yaml:"-" json:"alphabet"`
}

// UnmarshalYAML implements custom unmarshaling for the two-element list form
func (c *CheckSample) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var pair []interface{}
	if err := unmarshal(&pair); err != nil {
		return fmt.Errorf("check sample must be a list: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("check sample must have exactly 2 elements, got %d", len(pair))
	}
	c.Candidate = pair[0]
	c.Alphabet = pair[1]
	return nil
}
