package diag

// Logger is the structured logger the diagnostics channel writes to. The
// method set lines up with slog style loggers and zap's SugaredLogger, so
// either can back it with a thin wrapper.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
