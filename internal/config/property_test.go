package config_test

import (
	"testing"

	"firewatch/internal/config"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestResolveEnvironment_Total verifies every signal has a defined outcome.
// Property: known signal -> itself, anything else -> development
func TestResolveEnvironment_Total(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	known := config.DefaultProfiles()

	properties.Property("unknown signals resolve to development", prop.ForAll(
		func(signal string) bool {
			got := config.ResolveEnvironment(signal)
			if _, ok := known[config.Environment(signal)]; ok {
				return got == config.Environment(signal)
			}
			return got == config.Development
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestAPIURL_PureConcatenation verifies APIURL is base + path and idempotent.
func TestAPIURL_PureConcatenation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	names := config.EndpointNames()

	properties.Property("APIURL(name) == base + path, twice", prop.ForAll(
		func(idx int, prod bool) bool {
			name := names[idx]
			signal := "development"
			if prod {
				signal = "production"
			}
			r := config.New(signal)

			first, err1 := r.APIURL(name)
			second, err2 := r.APIURL(name)
			if err1 != nil || err2 != nil {
				return false
			}
			path, _ := config.EndpointPath(name)
			return first == second && first == r.Profile().APIBaseURL+path
		},
		gen.IntRange(0, len(names)-1),
		gen.Bool(),
	))

	properties.Property("names outside the catalogue always fail", prop.ForAll(
		func(s string) bool {
			name := config.EndpointName(s)
			_, known := config.EndpointPath(name)
			_, err := config.New("").APIURL(name)
			return known == (err == nil)
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
