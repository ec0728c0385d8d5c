// Package labels resolves the human-readable text shown by the survey.
//
// Labels are keyed by stable identifiers. A default English catalog is
// embedded in the binary; a YAML file can override any subset of keys.
package labels

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Label keys used by the survey screens.
const (
	Header          = "pokefit_header"
	LogoDescription = "pokefit_logo_description"
	MainQuestion    = "survey_main_question"
	StepsQuestion   = "survey_steps_question"
	StepsNumber     = "label_steps_number"
	ButtonOK        = "button_ok"
	ButtonBack      = "button_back"
	Tagline         = "welcome_tagline"
	Thanks          = "confirm_thanks"
	AnswerStep      = "confirm_step"
	AnswerChoice    = "confirm_choice"
	AnswerSteps     = "confirm_steps_per_day"
	StepTraining    = "step_training_improvement"
	StepHealth      = "step_general_health"
)

//go:embed labels.yaml
var defaultCatalog []byte

// Catalog maps label keys to display text.
type Catalog struct {
	entries map[string]string
}

// Default returns the embedded catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("labels: embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse reads a catalog from YAML: a flat mapping of key to text.
func Parse(data []byte) (*Catalog, error) {
	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse labels: %w", err)
	}
	return &Catalog{entries: entries}, nil
}

// Load returns the embedded catalog with the keys from the YAML file at
// path layered on top. An empty path returns the default catalog.
func Load(path string) (*Catalog, error) {
	base := Default()
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels file: %w", err)
	}
	override, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return base.Merge(override), nil
}

// Merge returns a new catalog with other's entries taking precedence.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := make(map[string]string, len(c.entries)+len(other.entries))
	for k, v := range c.entries {
		merged[k] = v
	}
	for k, v := range other.entries {
		merged[k] = v
	}
	return &Catalog{entries: merged}
}

// Get returns the text for key, or the key itself when it is missing.
func (c *Catalog) Get(key string) string {
	if c == nil {
		return key
	}
	if v, ok := c.entries[key]; ok {
		return v
	}
	return key
}

// Has reports whether key is defined.
func (c *Catalog) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Keys returns every defined key in sorted order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalYAML lets the effective catalog be printed back out.
func (c *Catalog) MarshalYAML() (any, error) {
	return c.entries, nil
}
