package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Iron-Ham/conflictpane/internal/tui/styles"
	"github.com/gobwas/glob"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "conflicts.debounce_ms")
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
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// maxDebounceMs bounds conflicts.debounce_ms
const maxDebounceMs = 10000

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateConflicts()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	// A theme file replaces the built-in theme, so the name is not checked then
	if c.TUI.ThemeFile == "" && c.TUI.Theme != "" && !styles.IsValidTheme(c.TUI.Theme) {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(styles.BuiltinThemes(), ", ")),
		})
	}

	if strings.ContainsAny(c.TUI.Namespace, " \t\n") {
		errors = append(errors, ValidationError{
			Field:   "tui.namespace",
			Value:   c.TUI.Namespace,
			Message: "must not contain whitespace",
		})
	}

	return errors
}

// validateConflicts validates the ConflictsConfig
func (c *Config) validateConflicts() []ValidationError {
	var errors []ValidationError

	for i, pattern := range c.Conflicts.Ignore {
		if pattern == "" {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("conflicts.ignore[%d]", i),
				Value:   pattern,
				Message: "pattern must not be empty",
			})
			continue
		}
		if _, err := glob.Compile(pattern, '/'); err != nil {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("conflicts.ignore[%d]", i),
				Value:   pattern,
				Message: fmt.Sprintf("invalid glob pattern: %v", err),
			})
		}
	}

	if c.Conflicts.DebounceMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "conflicts.debounce_ms",
			Value:   c.Conflicts.DebounceMs,
			Message: "must be non-negative",
		})
	}
	if c.Conflicts.DebounceMs > maxDebounceMs {
		errors = append(errors, ValidationError{
			Field:   "conflicts.debounce_ms",
			Value:   c.Conflicts.DebounceMs,
			Message: fmt.Sprintf("exceeds maximum of %dms", maxDebounceMs),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if strings.ContainsRune(c.Logging.Dir, '\x00') {
		errors = append(errors, ValidationError{
			Field:   "logging.dir",
			Value:   c.Logging.Dir,
			Message: "path contains invalid null character",
		})
	}

	return errors
}
