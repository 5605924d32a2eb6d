package config

import "errors"

var (
	// ErrUnknownEndpoint means a caller asked for a name outside the endpoint catalogue.
	ErrUnknownEndpoint = errors.New("unknown endpoint")

	ErrInvalidProfile     = errors.New("invalid profile")
	ErrMissingDevelopment = errors.New("profile set has no development entry")
)
