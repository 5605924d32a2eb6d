// Package config decides which detection backend the client addresses and
// holds the catalogues of REST paths and realtime event names.
//
// The environment is resolved once per process. Changing it requires a restart.
package config

// Environment is the deployment context the client was built or launched for.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

func (e Environment) String() string {
	return string(e)
}

// ResolveEnvironment maps a mode signal onto the built-in profiles.
// An absent or unrecognised signal resolves to Development, never Production.
func ResolveEnvironment(signal string) Environment {
	return resolveIn(signal, builtinProfiles)
}

func resolveIn(signal string, profiles map[Environment]Profile) Environment {
	env := Environment(signal)
	if _, ok := profiles[env]; ok {
		return env
	}
	return Development
}
