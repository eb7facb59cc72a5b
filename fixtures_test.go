package stringdist

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// fixtureCase is a single case from the shared fixtures file. Options left
// at their zero value fall back to the library defaults.
type fixtureCase struct {
	InputA      string    `yaml:"input_a"`
	InputB      string    `yaml:"input_b"`
	Q           int       `yaml:"q"`
	P           float64   `yaml:"p"`
	Weights     []float64 `yaml:"weights"`
	Expected    float64   `yaml:"expected"`
	Description string    `yaml:"description"`
}

type fixtureGroup struct {
	Category string        `yaml:"category"`
	Cases    []fixtureCase `yaml:"cases"`
}

type fixtureData struct {
	Version   string         `yaml:"version"`
	TestCases []fixtureGroup `yaml:"test_cases"`
}

func loadFixtures(t *testing.T) *fixtureData {
	t.Helper()

	path := filepath.Join("testdata", "stringdist-fixtures.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read fixtures file %s: %v", path, err)
	}

	var fixtures fixtureData
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("failed to parse fixtures YAML: %v", err)
	}
	return &fixtures
}

func TestFixtures(t *testing.T) {
	fixtures := loadFixtures(t)

	for _, group := range fixtures.TestCases {
		method, err := ParseMethod(group.Category)
		if err != nil {
			t.Fatalf("fixtures use unknown method %q", group.Category)
		}

		t.Run(group.Category, func(t *testing.T) {
			for _, tc := range group.Cases {
				name := tc.Description
				if name == "" {
					name = tc.InputA + "_" + tc.InputB
				}

				t.Run(name, func(t *testing.T) {
					opts := DefaultOptions()
					if tc.Q > 0 {
						opts.Q = tc.Q
					}
					opts.P = tc.P
					if len(tc.Weights) > 0 {
						opts.Weights = tc.Weights
					}

					got, err := Distance(tc.InputA, tc.InputB, method, opts)
					if err != nil {
						t.Fatalf("Distance returned error: %v", err)
					}

					if math.IsInf(tc.Expected, 1) {
						if !math.IsInf(got, 1) {
							t.Errorf("%s(%q, %q) = %v, want +Inf", method, tc.InputA, tc.InputB, got)
						}
						return
					}
					if math.Abs(got-tc.Expected) > 1e-9 {
						t.Errorf("%s(%q, %q) = %v, want %v", method, tc.InputA, tc.InputB, got, tc.Expected)
					}
				})
			}
		})
	}
}
