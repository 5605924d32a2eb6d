package core

// Error codes
const (
	ErrUnknownEndpoint = "UNKNOWN_ENDPOINT"
	ErrNotFound        = "NOT_FOUND"
	ErrProxyFailed     = "PROXY_FAILED"
	ErrInvalidRequest  = "INVALID_REQUEST"
	ErrInternalError   = "INTERNAL_ERROR"
)
