package rtl

import "fmt"

// ConfigError indicates an invalid construction-time parameter.
// It is the only error class a clocked component can produce.
type ConfigError struct {
	Field  string
	Reason string
	// Err is the sentinel the error was created from, if any.
	Err error
}

// Error implements error.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid is a shortcut to create a ConfigError.
func Invalid(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// Unwrap gets the sentinel error, nil when created by Invalid.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Wrap creates a ConfigError carrying a sentinel error.
func Wrap(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Reason: err.Error(), Err: err}
}

// Cause gets the sentinel of a ConfigError, or err itself.
func Cause(err error) error {
	if e, ok := err.(*ConfigError); ok && e.Err != nil {
		return e.Err
	}
	return err
}
