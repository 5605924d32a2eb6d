package config

import "fmt"

// Resolver is the configuration of one process: the resolved environment,
// its profile and the helpers that turn catalogue names into URLs.
// A Resolver never changes after construction.
type Resolver struct {
	signal   string
	env      Environment
	profile  Profile
	fallback bool
}

// New resolves signal against the built-in profiles.
func New(signal string) *Resolver {
	return newResolver(signal, builtinProfiles)
}

// NewWithProfiles resolves signal against a caller-supplied profile set,
// typically one returned by LoadProfiles.
func NewWithProfiles(signal string, profiles map[Environment]Profile) (*Resolver, error) {
	if err := ValidateProfiles(profiles); err != nil {
		return nil, err
	}
	return newResolver(signal, profiles), nil
}

func newResolver(signal string, profiles map[Environment]Profile) *Resolver {
	env := resolveIn(signal, profiles)
	return &Resolver{
		signal:   signal,
		env:      env,
		profile:  profiles[env],
		fallback: string(env) != signal,
	}
}

func (r *Resolver) Environment() Environment {
	return r.env
}

// Signal is the raw mode signal the resolver was built from.
func (r *Resolver) Signal() string {
	return r.signal
}

// Fallback reports whether the signal was absent or unrecognised and the
// resolver defaulted to Development.
func (r *Resolver) Fallback() bool {
	return r.fallback
}

// Profile returns the active profile. Both URLs are always set.
func (r *Resolver) Profile() Profile {
	return r.profile
}

// APIURL joins the active API base URL and the catalogue path for name.
// The two strings are concatenated as-is, with no slash normalisation.
func (r *Resolver) APIURL(name EndpointName) (string, error) {
	path, ok := endpoints[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEndpoint, string(name))
	}
	return r.profile.APIBaseURL + path, nil
}

// MustAPIURL is APIURL for catalogue constants; it panics on an unknown name.
func (r *Resolver) MustAPIURL(name EndpointName) string {
	url, err := r.APIURL(name)
	if err != nil {
		panic(err)
	}
	return url
}

// WebSocketURL returns the realtime transport base. Events are routed by the
// protocol, not by the URL.
func (r *Resolver) WebSocketURL() string {
	return r.profile.WebSocketBaseURL
}

// APIConfig is the full client configuration as exposed to the application shell
type APIConfig struct {
	Environment Environment             `json:"environment"`
	BaseURL     string                  `json:"baseUrl"`
	Endpoints   map[EndpointName]string `json:"endpoints"`
	WebSocket   WebSocketConfig         `json:"websocket"`
}

type WebSocketConfig struct {
	URL    string               `json:"url"`
	Events map[EventName]string `json:"events"`
}

// Config returns a snapshot of the configuration. The maps are fresh copies.
func (r *Resolver) Config() APIConfig {
	return APIConfig{
		Environment: r.env,
		BaseURL:     r.profile.APIBaseURL,
		Endpoints:   Endpoints(),
		WebSocket: WebSocketConfig{
			URL:    r.profile.WebSocketBaseURL,
			Events: Events(),
		},
	}
}
