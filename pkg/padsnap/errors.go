package padsnap

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the engine. Match them with errors.Is.
var (
	// ErrAdapterUnavailable indicates a page widget has no registered adapter.
	// Navigation is disabled for that page and input passes through to the
	// host's native handling.
	ErrAdapterUnavailable = errors.New("no adapter registered for widget type")

	// ErrNoOptions indicates a choice list reported zero options, so the
	// selection modal cannot open on it.
	ErrNoOptions = errors.New("choice list has no options")

	// ErrNotAttached indicates the engine was asked to work without a page.
	ErrNotAttached = errors.New("no page attached")
)

// BindError reports which widget of a page failed to adapt and why.
type BindError struct {
	Index    int
	HostType string
	Err      error
}

func (e *BindError) Error() string {
	if e.HostType == "" {
		return fmt.Sprintf("bind widget %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("bind widget %d (%s): %v", e.Index, e.HostType, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

// IsAdapterUnavailable checks if an error means a widget type had no adapter.
func IsAdapterUnavailable(err error) bool {
	return errors.Is(err, ErrAdapterUnavailable)
}

// IsBindError checks if an error is a BindError and returns it.
func IsBindError(err error) (*BindError, bool) {
	var bindErr *BindError
	if errors.As(err, &bindErr) {
		return bindErr, true
	}
	return nil, false
}
