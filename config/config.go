// Package config holds process-wide defaults for gostringdist: the batch
// worker count and optional YAML profiles consumed by the CLI.
//
// Profiles are validated against an embedded JSON Schema before use, so a
// typo in a config file fails loudly at load time rather than as a silent
// fallback to defaults.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed profile.schema.json
var profileSchema string

// Profile is a declarative distance configuration, typically loaded from a
// YAML file by the CLI. Zero values mean "use the library default".
type Profile struct {
	// Method is a stringdist method identifier ("osa", "lv", ...).
	Method string `yaml:"method" json:"method"`

	// Weights are the edit penalties (deletion, insertion, substitution,
	// transposition), each in (0, 1].
	Weights []float64 `yaml:"weights" json:"weights,omitempty"`

	// Q is the q-gram size.
	Q int `yaml:"q" json:"q,omitempty"`

	// P is the Jaro-Winkler prefix scaling factor.
	P float64 `yaml:"p" json:"p,omitempty"`

	// MaxDist caps reported distances. Zero or omitted means uncapped;
	// the CLI translates that to +Inf for the library.
	MaxDist float64 `yaml:"max_dist" json:"max_dist,omitempty"`

	// UseBytes switches to byte units.
	UseBytes bool `yaml:"use_bytes" json:"use_bytes,omitempty"`

	// NThreads overrides the process-default worker count.
	NThreads int `yaml:"nthread" json:"nthread,omitempty"`

	// Log configures the CLI logger.
	Log LogProfile `yaml:"log" json:"log,omitempty"`
}

// LogProfile mirrors logging.Config for YAML profiles.
type LogProfile struct {
	Level   string `yaml:"level" json:"level,omitempty"`
	Console bool   `yaml:"console" json:"console,omitempty"`
	File    string `yaml:"file" json:"file,omitempty"`
}

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("profile.schema.json", profileSchema)
	})
	return schema, schemaErr
}

// LoadProfile reads, validates and decodes a YAML profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile validates raw YAML profile bytes against the embedded schema
// and decodes them.
func ParseProfile(data []byte) (*Profile, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	// The schema validator speaks JSON values, so round-trip the decoded
	// YAML through encoding/json before validating.
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	var jsonVal any
	if err := json.Unmarshal(jsonBytes, &jsonVal); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile profile schema: %w", err)
	}
	if err := sch.Validate(jsonVal); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile: %w", err)
	}
	return &p, nil
}
