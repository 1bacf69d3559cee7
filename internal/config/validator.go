package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "monitor.max_events")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateMonitor()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateMonitor validates the MonitorConfig.
// The buffer itself clamps non-positive capacities to 1; rejecting them
// here surfaces a config file typo to the user instead.
func (c *Config) validateMonitor() []ValidationError {
	var errors []ValidationError

	if c.Monitor.MaxEvents < 1 {
		errors = append(errors, ValidationError{
			Field:   "monitor.max_events",
			Value:   c.Monitor.MaxEvents,
			Message: "must be at least 1",
		})
	}

	if c.Monitor.DemoIntervalMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "monitor.demo_interval_ms",
			Value:   c.Monitor.DemoIntervalMs,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.TimestampFormat == "" {
		errors = append(errors, ValidationError{
			Field:   "tui.timestamp_format",
			Value:   c.TUI.TimestampFormat,
			Message: "must not be empty",
		})
	}

	if c.TUI.PayloadLines < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.payload_lines",
			Value:   c.TUI.PayloadLines,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
