package config

// Mode is the build-time environment signal:
//
//	go build -ldflags "-X firewatch/internal/config.Mode=production"
var Mode string

// EnvMode is consulted by native builds when Mode is empty.
const EnvMode = "FIREWATCH_MODE"
