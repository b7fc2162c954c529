package logging

// NewTestLogger returns a logger suitable for unit tests, console encoded
// at debug level so failing tests carry full context.
func NewTestLogger() *Logger {
	return NewLoggerFromEnv("dev")
}
