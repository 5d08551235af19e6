package wirework

import (
	"errors"
	"fmt"
)

// Sentinel errors for view and router operations.
var (
	ErrNoTemplate      = errors.New("wirework: view template missing")
	ErrNoController    = errors.New("wirework: router requires a controller")
	ErrMethodNotFound  = errors.New("wirework: controller method not found")
	ErrBadHandler      = errors.New("wirework: controller method has wrong signature")
	ErrNotSerializable = errors.New("wirework: value does not serialize to template data")
)

// ConfigurationError reports a route table that cannot be compiled against
// its controller. It is returned from NewAppRouter before any route has
// been registered - misconfiguration is never deferred to dispatch time.
type ConfigurationError struct {
	// Method is the missing or unusable controller method name, when the
	// failure concerns a specific route.
	Method string
	// Err classifies the failure (ErrMethodNotFound, ErrBadHandler,
	// ErrNoController).
	Err error
}

func (e *ConfigurationError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Method)
	}
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError checks if err is a router configuration error.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsMethodNotFound checks if err reports a missing controller method.
func IsMethodNotFound(err error) bool {
	return errors.Is(err, ErrMethodNotFound)
}
