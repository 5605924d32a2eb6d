package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Profile holds the backend addresses for one environment
type Profile struct {
	APIBaseURL       string `json:"apiBaseUrl" yaml:"api_base_url" validate:"required,url"`
	WebSocketBaseURL string `json:"webSocketBaseUrl" yaml:"websocket_base_url" validate:"required,url"`
}

var builtinProfiles = map[Environment]Profile{
	Development: {
		APIBaseURL:       "http://localhost:5000",
		WebSocketBaseURL: "http://localhost:5000",
	},
	Production: {
		APIBaseURL:       "https://fire-smoke-detection-api.onrender.com",
		WebSocketBaseURL: "https://fire-smoke-detection-api.onrender.com",
	},
}

var validate = validator.New()

func init() {
	if err := ValidateProfiles(builtinProfiles); err != nil {
		panic(fmt.Sprintf("config: built-in profiles: %v", err))
	}
}

// DefaultProfiles returns a copy of the built-in profile set.
func DefaultProfiles() map[Environment]Profile {
	out := make(map[Environment]Profile, len(builtinProfiles))
	for env, p := range builtinProfiles {
		out[env] = p
	}
	return out
}

// ValidateProfiles checks that the set contains Development, the fallback
// environment, and that every profile carries two absolute URLs.
func ValidateProfiles(profiles map[Environment]Profile) error {
	if _, ok := profiles[Development]; !ok {
		return ErrMissingDevelopment
	}

	envs := make([]Environment, 0, len(profiles))
	for env := range profiles {
		envs = append(envs, env)
	}
	slices.Sort(envs)

	for _, env := range envs {
		if strings.TrimSpace(string(env)) == "" {
			return fmt.Errorf("%w: empty environment name", ErrInvalidProfile)
		}
		p := profiles[env]
		if err := validate.Struct(&p); err != nil {
			return fmt.Errorf("%w: %s: %s", ErrInvalidProfile, env, describeValidation(err))
		}
	}
	return nil
}

func describeValidation(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	var details strings.Builder
	for _, fe := range errs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Field()))
		case "url":
			details.WriteString(fmt.Sprintf("%s must be an absolute URL, got %q", fe.Field(), fe.Value()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return details.String()
}
