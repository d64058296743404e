package hostproc

// Result reports the outcome of one start attempt. Exactly one of the
// three variants is active: NotStarted (no attempt yet), a failed attempt
// carrying its cause, or a started attempt owning the live process handle.
type Result struct {
	state  resultState
	cause  error
	handle *Handle
}

type resultState int

const (
	stateNotStarted resultState = iota
	stateFailed
	stateStarted
)

func (s resultState) String() string {
	switch s {
	case stateNotStarted:
		return "not-started"
	case stateFailed:
		return "failed"
	case stateStarted:
		return "started"
	default:
		return "unknown"
	}
}

// NotStarted is the result before any start attempt. It is a singleton:
// compare results against it directly. No other result value ever
// compares equal to it.
var NotStarted = &Result{state: stateNotStarted}

func newFailed(cause error) *Result {
	return &Result{state: stateFailed, cause: cause}
}

func newStarted(h *Handle) *Result {
	return &Result{state: stateStarted, handle: h}
}

// Started reports whether the host process was launched and confirmed
// alive. This is the only variant for which the result counts as success.
func (r *Result) Started() bool {
	return r.state == stateStarted
}

// Failed reports whether a start attempt was made and did not produce a
// running process.
func (r *Result) Failed() bool {
	return r.state == stateFailed
}

// Err returns the cause of a failed attempt, or nil for the other variants.
func (r *Result) Err() error {
	return r.cause
}

// Handle returns the live process handle of a started attempt, or nil for
// the other variants.
func (r *Result) Handle() *Handle {
	return r.handle
}

// String describes the active variant, for diagnostics.
func (r *Result) String() string {
	return r.state.String()
}
