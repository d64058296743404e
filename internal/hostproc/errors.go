package hostproc

import "fmt"

// HostError represents a host-process failure with its underlying cause.
type HostError struct {
	Op      string // Operation that failed (e.g. "start", "verify")
	Err     error  // Underlying error
	Message string // Human-readable message
}

func (e *HostError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// Common error constructors

// ErrLaunchFailed returns an error for when the spawn call itself fails.
func ErrLaunchFailed(err error) *HostError {
	return &HostError{
		Op:      "start",
		Err:     err,
		Message: "host process failed to launch",
	}
}

// ErrExitedEarly returns an error for when the process spawned but exited
// before startup verification completed.
func ErrExitedEarly(site string, waitErr error) *HostError {
	return &HostError{
		Op:      "verify",
		Err:     waitErr,
		Message: fmt.Sprintf("host process for site %q exited unexpectedly", site),
	}
}

// ErrLaunchPanicked returns an error for a panic recovered during a start
// attempt. Start converts panics into failed results instead of letting
// them unwind through the caller.
func ErrLaunchPanicked(v interface{}) *HostError {
	return &HostError{
		Op:      "start",
		Message: fmt.Sprintf("host launch panicked: %v", v),
	}
}
