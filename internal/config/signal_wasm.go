//go:build js && wasm

package config

// Signal returns the build-time mode. The browser has no process environment,
// so only the linker-provided value counts.
func Signal() string {
	return Mode
}
