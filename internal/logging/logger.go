package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"iamcatalog/internal/domain"
)

// Re-export LogLevel for convenience
type LogLevel = domain.LogLevel

const (
	LogLevelDebug = domain.LogLevelDebug
	LogLevelInfo  = domain.LogLevelInfo
	LogLevelWarn  = domain.LogLevelWarn
	LogLevelError = domain.LogLevelError
)

// StructuredLogEntry is one JSON log line
type StructuredLogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     LogLevel               `json:"level"`
	Message   string                 `json:"message"`
	Operation string                 `json:"operation,omitempty"`
	Service   string                 `json:"service,omitempty"`
	Resource  string                 `json:"resource,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Metrics   map[string]interface{} `json:"metrics,omitempty"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

type structuredLogger struct {
	enabled  bool
	minLevel LogLevel
}

var logger = &structuredLogger{
	enabled:  true,
	minLevel: LogLevelInfo,
}

// SetLogLevel sets the minimum log level
func SetLogLevel(level LogLevel) {
	logger.minLevel = level
}

// ParseLogLevel maps a case-insensitive level name to a LogLevel
func ParseLogLevel(name string) (LogLevel, error) {
	switch LogLevel(strings.ToUpper(strings.TrimSpace(name))) {
	case LogLevelDebug:
		return LogLevelDebug, nil
	case LogLevelInfo:
		return LogLevelInfo, nil
	case LogLevelWarn, "WARNING":
		return LogLevelWarn, nil
	case LogLevelError:
		return LogLevelError, nil
	}
	return LogLevelInfo, fmt.Errorf("unknown log level %q", name)
}

// SetPlain switches between JSON lines and plain "[LEVEL] message" lines
func SetPlain(plain bool) {
	logger.enabled = !plain
}

func logLevelPriority(level LogLevel) int {
	switch level {
	case LogLevelDebug:
		return 0
	case LogLevelInfo:
		return 1
	case LogLevelWarn:
		return 2
	case LogLevelError:
		return 3
	default:
		return 1
	}
}

func buildEntry(level LogLevel, message string, fields ...map[string]interface{}) StructuredLogEntry {
	entry := StructuredLogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	}

	if len(fields) == 0 {
		return entry
	}

	entry.Context = make(map[string]interface{})
	for _, field := range fields {
		for k, v := range field {
			switch k {
			case "operation":
				entry.Operation = fmt.Sprintf("%v", v)
			case "service":
				entry.Service = fmt.Sprintf("%v", v)
			case "resource":
				entry.Resource = fmt.Sprintf("%v", v)
			case "error":
				entry.Error = fmt.Sprintf("%v", v)
			case "metrics":
				if m, ok := v.(map[string]interface{}); ok {
					entry.Metrics = m
				}
			default:
				entry.Context[k] = v
			}
		}
	}
	if len(entry.Context) == 0 {
		entry.Context = nil
	}
	return entry
}

func logStructured(level LogLevel, message string, fields ...map[string]interface{}) {
	if logLevelPriority(level) < logLevelPriority(logger.minLevel) {
		return
	}

	if !logger.enabled {
		log.Printf("[%s] %s", level, message)
		return
	}

	jsonBytes, err := json.Marshal(buildEntry(level, message, fields...))
	if err != nil {
		log.Printf("[%s] %s", level, message)
		return
	}

	log.Println(string(jsonBytes))
}

// LogDebug logs a debug message
func LogDebug(message string, fields ...map[string]interface{}) {
	logStructured(LogLevelDebug, message, fields...)
}

// LogInfo logs an info message
func LogInfo(message string, fields ...map[string]interface{}) {
	logStructured(LogLevelInfo, message, fields...)
}

// LogWarn logs a warning message
func LogWarn(message string, fields ...map[string]interface{}) {
	logStructured(LogLevelWarn, message, fields...)
}

// LogError logs an error message
func LogError(message string, err error, fields ...map[string]interface{}) {
	errorFields := make([]map[string]interface{}, 0, len(fields)+1)
	if err != nil {
		errorFields = append(errorFields, map[string]interface{}{"error": err.Error()})
	}
	errorFields = append(errorFields, fields...)
	logStructured(LogLevelError, message, errorFields...)
}

// LogOperationStart logs the start of an operation
func LogOperationStart(operation string, fields ...map[string]interface{}) {
	opFields := []map[string]interface{}{
		{"operation": operation},
	}
	opFields = append(opFields, fields...)
	LogDebug(fmt.Sprintf("Starting operation: %s", operation), opFields...)
}

// LogOperationEnd logs the end of an operation and records it in the metrics
func LogOperationEnd(operation string, duration time.Duration, success bool, itemsProcessed, itemsFound int, err error) {
	GetMetrics().RecordOperation(operation, duration, success, itemsProcessed, itemsFound, err)

	fields := []map[string]interface{}{
		{
			"operation":       operation,
			"duration_ms":     duration.Milliseconds(),
			"success":         success,
			"items_processed": itemsProcessed,
			"items_found":     itemsFound,
		},
	}
	if success {
		LogDebug(fmt.Sprintf("Completed operation: %s", operation), fields...)
	} else {
		LogError(fmt.Sprintf("Failed operation: %s", operation), err, fields...)
	}
}

// LogAPICall logs an AWS API call and records it in the metrics
func LogAPICall(apiName string, success bool, duration time.Duration, err error) {
	GetMetrics().RecordAPICall(apiName, success, err)

	fields := []map[string]interface{}{
		{
			"api_name":    apiName,
			"success":     success,
			"duration_ms": duration.Milliseconds(),
		},
	}
	if err != nil {
		fields = append(fields, map[string]interface{}{"error": err.Error()})
	}
	if success {
		LogDebug(fmt.Sprintf("API call: %s", apiName), fields...)
	} else {
		LogWarn(fmt.Sprintf("API call failed: %s", apiName), fields...)
	}
}
