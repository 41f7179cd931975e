package erroz

import (
	"fmt"

	platformerrors "github.com/jmgilman/go/errors"
)

// Properties reported by ConfigError.
const (
	PropertyOptions = "options"
	PropertyName    = "name"
	PropertyMessage = "message"
	PropertyStatus  = "status"
	PropertyCode    = "code"
)

// ConfigError is returned by Define when a definition is incomplete or
// inconsistent. It is only ever produced at definition time.
//
// ConfigError wraps a platform error with CodeInvalidConfig, so callers
// using github.com/jmgilman/go/errors can classify it with GetCode.
type ConfigError struct {
	// Property names the offending definition property.
	Property string

	// StatusCode is the status code that could not be classified.
	// Zero unless Property is PropertyStatus.
	StatusCode int

	cause platformerrors.PlatformError
}

func newConfigError(property string, statusCode int, message string) *ConfigError {
	return &ConfigError{
		Property:   property,
		StatusCode: statusCode,
		cause:      platformerrors.New(platformerrors.CodeInvalidConfig, message),
	}
}

func errMissingOptions() *ConfigError {
	return newConfigError(PropertyOptions, 0, "Missing options")
}

func errMissingName() *ConfigError {
	return newConfigError(PropertyName, 0, "Missing name property")
}

func errMissingMessage() *ConfigError {
	return newConfigError(PropertyMessage, 0, "Missing message property")
}

func errUnderivableStatus(statusCode int) *ConfigError {
	return newConfigError(PropertyStatus, statusCode, fmt.Sprintf(
		"Cannot derive status from status code %d. "+
			`When the status code is not 2xx, 4xx or 5xx, you need to specify an explicit status like "success", "fail" or "error".`,
		statusCode,
	))
}

func errInvalidStatus(status Status) *ConfigError {
	return newConfigError(PropertyStatus, 0, fmt.Sprintf(
		`Invalid status %q. Status must be one of "success", "fail" or "error".`,
		string(status),
	))
}

func errUnderivableCode(name string) *ConfigError {
	return newConfigError(PropertyCode, 0, fmt.Sprintf(
		"Cannot derive code from name %q. Specify an explicit code.", name,
	))
}

// Error returns the human readable description of the problem.
func (e *ConfigError) Error() string {
	return e.cause.Message()
}

// Unwrap returns the underlying platform error.
func (e *ConfigError) Unwrap() error {
	return e.cause
}
