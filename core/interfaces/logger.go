package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction allows for different logging implementations
// while maintaining a consistent interface.
//
// Example usage:
//
//	logger.Info("Aggregation completed", map[string]interface{}{
//		"sources": 7,
//		"items":   84,
//	})
//
//	logger.Warn("Source fetch failed", map[string]interface{}{
//		"source": "Punch",
//		"error":  err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
