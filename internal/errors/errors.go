package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigExists   = errors.New("config file already exists")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNotTerminal    = errors.New("not a terminal")
	ErrUnknownKey     = errors.New("unknown config key")
)

// CadenzaError wraps an error with a user-friendly suggestion.
type CadenzaError struct {
	Err        error
	Suggestion string
}

func (e *CadenzaError) Error() string {
	return e.Err.Error()
}

func (e *CadenzaError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &CadenzaError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// Check if it's already a CadenzaError with suggestion
	var cErr *CadenzaError
	if errors.As(err, &cErr) && cErr.Suggestion != "" {
		return cErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrConfigNotFound) {
		return "Run 'cadenza config init' to create a configuration file"
	}

	if errors.Is(err, ErrConfigExists) {
		return "Edit the existing file, or use 'cadenza config set' to change a value"
	}

	if errors.Is(err, ErrUnknownKey) {
		return "Run 'cadenza config set --help' to see supported keys"
	}

	if errors.Is(err, ErrNotTerminal) || strings.Contains(errStr, "/dev/tty") {
		return "Run 'cadenza show' to print the player without a terminal"
	}

	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "invalid theme") ||
		strings.Contains(errStr, "invalid log level") || strings.Contains(errStr, "toml") {
		return "Check your config with 'cadenza config show'"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
