package virtuallist

import (
	"errors"
	"fmt"
)

// Sentinel errors for virtual list operations.
var (
	// ErrInvalidIndex is returned when an item index is outside [0, total).
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidConfig is returned by Config.Validate for values the engine
	// would otherwise have to clamp.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// InvalidIndexError reports an out-of-range item index together with the item
// count at the time of the call. It matches ErrInvalidIndex via errors.Is.
type InvalidIndexError struct {
	Index int
	Total int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("invalid index: %d (total items: %d)", e.Index, e.Total)
}

// Is reports whether target is ErrInvalidIndex.
func (e *InvalidIndexError) Is(target error) bool {
	return target == ErrInvalidIndex
}

// ConfigError describes a single rejected configuration field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig, e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfig so callers can use errors.Is.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
