package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"firewatch/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stagingYAML = `
staging:
  api_base_url: https://staging.example.com
  websocket_base_url: wss://staging.example.com
production:
  api_base_url: https://detector.example.com
  websocket_base_url: https://detector.example.com
`

func TestLoadProfiles_OverlaysBuiltins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(stagingYAML), 0o644))

	profiles, err := config.LoadProfiles(path)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultProfiles()[config.Development], profiles[config.Development])
	assert.Equal(t, "https://detector.example.com", profiles[config.Production].APIBaseURL)
	assert.Equal(t, "wss://staging.example.com", profiles["staging"].WebSocketBaseURL)

	r, err := config.NewWithProfiles("staging", profiles)
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com/health", r.MustAPIURL(config.EndpointHealth))

	// Built-ins are untouched
	assert.Equal(t, "https://fire-smoke-detection-api.onrender.com", config.DefaultProfiles()[config.Production].APIBaseURL)
}

func TestLoadProfiles_Errors(t *testing.T) {
	_, err := config.LoadProfiles(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = config.ParseProfiles([]byte("development: [not, a, profile]"))
	assert.Error(t, err)

	_, err = config.ParseProfiles([]byte("production:\n  api_base_url: nope\n  websocket_base_url: https://x.example\n"))
	assert.ErrorIs(t, err, config.ErrInvalidProfile)
}

func TestParseProfiles_EmptyKeepsBuiltins(t *testing.T) {
	profiles, err := config.ParseProfiles(nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultProfiles(), profiles)
}
