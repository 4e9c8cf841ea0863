package logger

// Logger provides a standardized logging interface for the BB-Oracle client.
// It defines methods for different log levels (Debug, Info, Warn, Error) so
// the client, the token lifecycle and the throttle all log the same way.
// Plug in zap or logrus through NewZap / NewLogrus, any other implementation
// of this interface, or use Noop to disable logging entirely.
//
// The logger is used throughout the client for:
// - token refreshes and their failures
// - throttle waits
// - request dispatch and transport errors
// - caller-side retry attempts
//
// Usage Example:
//
//	zl, _ := zap.NewProduction()
//	client := bboracle.NewClient(provider, bboracle.WithLogger(logger.NewZap(zl)))
//
//	// Disable logging entirely
//	client := bboracle.NewClient(provider, bboracle.WithLogger(&logger.Noop{}))
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
