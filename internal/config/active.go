package config

// active is resolved once, at package initialisation, from Signal.
var active = New(Signal())

// Active returns the process-wide resolver.
func Active() *Resolver {
	return active
}

func ActiveProfile() Profile {
	return active.Profile()
}

// APIURL builds an absolute URL for name using the process-wide resolver.
func APIURL(name EndpointName) (string, error) {
	return active.APIURL(name)
}

func WebSocketURL() string {
	return active.WebSocketURL()
}
