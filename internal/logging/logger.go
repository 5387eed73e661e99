// Package logging defines the structured-logging interface the backend
// logs through. The slog implementation below is the only one in use;
// the interface exists so tests can discard output cheaply.
package logging

import "context"

// Logger logs leveled, structured messages. The variadic args are
// alternating key-value pairs, as in slog:
//
//	log.Info(ctx, "listening", "addr", addr)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger carrying the given key-value pairs on
	// every record, e.g. a per-request logger with the request id.
	With(args ...any) Logger
}
