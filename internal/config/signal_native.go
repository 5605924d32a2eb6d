//go:build !(js && wasm)

package config

import "os"

// Signal returns the raw mode signal for this process
func Signal() string {
	if Mode != "" {
		return Mode
	}
	return os.Getenv(EnvMode)
}
