// ABOUTME: Logger interface for structured logging across the application
// ABOUTME: Field maps carry structured context alongside each message

package interfaces

// Logger defines the interface for structured logging
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
