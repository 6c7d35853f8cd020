package testdoubles

import (
	"sync"
)

// LoggerSpy is a Logger implementation that captures logging calls for
// testing. It implements the entitymodel.Logger interface, making it suitable
// for asserting on the model's diagnostic warnings and lifecycle debug output.
type LoggerSpy struct {
	debugRecords []SpyLogRecord
	infoRecords  []SpyLogRecord
	warnRecords  []SpyLogRecord
	errorRecords []SpyLogRecord
	mu           sync.Mutex
}

// SpyLogRecord represents a recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

// NewLoggerSpy creates a new LoggerSpy instance.
func NewLoggerSpy() *LoggerSpy {
	return &LoggerSpy{}
}

// Debug implements the Logger interface for testing.
func (s *LoggerSpy) Debug(msg string, args ...any) {
	s.record(&s.debugRecords, "debug", msg, args)
}

// Info implements the Logger interface for testing.
func (s *LoggerSpy) Info(msg string, args ...any) {
	s.record(&s.infoRecords, "info", msg, args)
}

// Warn implements the Logger interface for testing.
func (s *LoggerSpy) Warn(msg string, args ...any) {
	s.record(&s.warnRecords, "warn", msg, args)
}

// Error implements the Logger interface for testing.
func (s *LoggerSpy) Error(msg string, args ...any) {
	s.record(&s.errorRecords, "error", msg, args)
}

// DebugRecords returns the recorded debug calls.
func (s *LoggerSpy) DebugRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.debugRecords...)
}

// WarnRecords returns the recorded warn calls.
func (s *LoggerSpy) WarnRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.warnRecords...)
}

// ErrorRecords returns the recorded error calls.
func (s *LoggerSpy) ErrorRecords() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SpyLogRecord(nil), s.errorRecords...)
}

// Reset clears all recorded calls.
func (s *LoggerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.debugRecords = nil
	s.infoRecords = nil
	s.warnRecords = nil
	s.errorRecords = nil
}

func (s *LoggerSpy) record(into *[]SpyLogRecord, level string, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*into = append(*into, SpyLogRecord{
		Level:   level,
		Message: msg,
		Args:    args,
	})
}
