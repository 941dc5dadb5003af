package retained

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSetup is returned when a solve is requested on a container that
	// was not created with NewContainer.
	ErrNotSetup = errors.New("retained: layout requested before setup completed")

	// ErrReentrantSolve is returned when a solve or a structural mutation is
	// requested while the container is already solving.
	ErrReentrantSolve = errors.New("retained: layout requested before solve completed")

	// ErrInvalidLength is the root of every configuration error.
	ErrInvalidLength = errors.New("retained: invalid length")
)

// ConfigError describes an item whose lengths cannot be used by its
// container. It aborts the whole solve.
type ConfigError struct {
	Index  int    // position of the item in the container
	Field  string // "main" or "cross"
	Length Length
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("retained: item %d: %s length %s: %s", e.Index, e.Field, e.Length, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidLength }
