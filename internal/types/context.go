// Package types holds shared types used across layers.
package types

// ContextKey is the type used for values stored in a request context.
// A dedicated type avoids collisions with keys set by other packages.
type ContextKey string

// String returns the key as a plain string, for APIs (such as gin.Context.Set)
// that only accept string keys.
func (k ContextKey) String() string {
	return string(k)
}

const (
	// RequestIDContextKey carries the unique ID assigned to each request.
	RequestIDContextKey ContextKey = "request_id"

	// LoggerContextKey carries the request-scoped logger.
	LoggerContextKey ContextKey = "logger"
)
