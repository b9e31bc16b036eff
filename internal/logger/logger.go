// Package logger provides the application logger. A request-scoped entry is
// stored in the request context by the middleware layer; GetLogger retrieves
// it so log lines anywhere in a request's call path carry the request ID.
package logger

import (
	"context"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Peculiar9/dojo/internal/types"
)

var base = logrus.New()

func init() {
	base.SetOutput(os.Stdout)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Init configures the shared base logger. Called once at startup, before
// any request is served.
func Init(level string, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		base.SetFormatter(&logrus.JSONFormatter{})
	} else {
		base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// GetLogger returns the request-scoped logger from ctx, or an entry on the
// shared base logger when the context carries none.
func GetLogger(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(types.LoggerContextKey).(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(base)
}

// Infof logs at info level using the context's logger.
func Infof(ctx context.Context, format string, args ...any) {
	GetLogger(ctx).Infof(format, args...)
}

// Errorf logs at error level using the context's logger.
func Errorf(ctx context.Context, format string, args ...any) {
	GetLogger(ctx).Errorf(format, args...)
}
