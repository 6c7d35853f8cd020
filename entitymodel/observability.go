package entitymodel

// Logger interface for diagnostic warnings and edit-lifecycle debug messages.
// This interface follows a dependency-free pattern, allowing users to integrate
// with any logging backend (log/slog, OpenTelemetry bridges, structured loggers, ...)
// by implementing these four methods. A nil logger disables all output.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}
