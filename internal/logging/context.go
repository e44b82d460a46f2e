package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the context logger, or a disabled logger when none is set.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// withField attaches a child logger carrying key=value.
func withField(ctx context.Context, key, value string) context.Context {
	child := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, child)
}

// WithComponent tags log lines with the subsystem emitting them.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithPath tags log lines with the configuration file being handled.
func WithPath(ctx context.Context, path string) context.Context {
	return withField(ctx, "path", path)
}

// WithRole tags log lines with the daemon role (bitcoin, p2pool).
func WithRole(ctx context.Context, role string) context.Context {
	return withField(ctx, "role", role)
}
