package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	// LogLevelDebug for detailed debug information
	LogLevelDebug LogLevel = iota
	// LogLevelInfo for general operational information
	LogLevelInfo
	// LogLevelWarn for warnings
	LogLevelWarn
	// LogLevelError for errors
	LogLevelError
)

// Logger defines logging operations consumed by the domain
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// Debug logs detailed diagnostic messages
	Debug(message string, fields map[string]any)
	// Info logs operational messages
	Info(message string, fields map[string]any)
	// Warn logs warnings
	Warn(message string, fields map[string]any)
	// Error logs errors
	Error(message string, fields map[string]any)
	// Flush ensures buffered logs are written
	Flush() error
}
