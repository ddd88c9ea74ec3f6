package boundary

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrFiltered is returned by Step once the calculator has produced its
// filtered boundary and become read-only. A new run needs a new Calculator.
var ErrFiltered = errors.New("boundary: calculator is filtered and read-only")

// ConfigurationError reports an invalid construction-time argument, like a
// reversed sampling interval or a dimension mismatch between the sampling
// ranges and the classifier input. It is never retried.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("boundary: invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsConfigurationError reports whether err is a ConfigurationError anywhere
// in its chain.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
