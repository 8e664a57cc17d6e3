package benchsheet

import (
	"errors"
	"fmt"

	"github.com/ukaji3/benchsheet-go/pkg/benchsheet/scoring"
)

// ErrInvalidWeights indicates the scoring weights are malformed or do not sum to 100.
var ErrInvalidWeights = scoring.ErrInvalidWeights

// ErrInvalidOptions indicates an option outside its accepted range.
var ErrInvalidOptions = errors.New("invalid options")

// ConfigError represents a configuration or input problem detected before
// any processing begins.
type ConfigError struct {
	Field string // "weights", "top_n", "lang", "lang_source", "input", ...
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error in %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{
		Field: field,
		Err:   err,
	}
}
