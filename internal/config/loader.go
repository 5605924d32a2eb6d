package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfiles reads a YAML profile file and overlays it on the built-in
// profiles. The file maps environment names to base URLs:
//
//	production:
//	  api_base_url: https://detector.example.com
//	  websocket_base_url: https://detector.example.com
func LoadProfiles(path string) (map[Environment]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profiles %q: %w", path, err)
	}

	profiles, err := ParseProfiles(data)
	if err != nil {
		return nil, fmt.Errorf("load profiles %q: %w", path, err)
	}
	return profiles, nil
}

// ParseProfiles decodes YAML profile data, overlays it on the built-in
// profiles and validates the result.
func ParseProfiles(data []byte) (map[Environment]Profile, error) {
	var parsed map[Environment]Profile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse profiles: %w", err)
	}

	profiles := DefaultProfiles()
	for env, p := range parsed {
		profiles[env] = p
	}

	if err := ValidateProfiles(profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}
