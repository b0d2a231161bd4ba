package storetest

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
}

// RecordingLogger captures structured log calls for assertions. It satisfies
// the diag Logger interface.
type RecordingLogger struct {
	Entries []LogEntry
}

func (l *RecordingLogger) Debug(msg string, keysAndValues ...any) {
	l.record("debug", msg, keysAndValues)
}

func (l *RecordingLogger) Info(msg string, keysAndValues ...any) {
	l.record("info", msg, keysAndValues)
}

func (l *RecordingLogger) Warn(msg string, keysAndValues ...any) {
	l.record("warn", msg, keysAndValues)
}

func (l *RecordingLogger) Error(msg string, keysAndValues ...any) {
	l.record("error", msg, keysAndValues)
}

// Messages returns the captured messages at level, in order.
func (l *RecordingLogger) Messages(level string) []string {
	var msgs []string
	for _, e := range l.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

func (l *RecordingLogger) record(level, msg string, fields []any) {
	l.Entries = append(l.Entries, LogEntry{Level: level, Message: msg, Fields: fields})
}
