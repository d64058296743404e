package hostproc

import (
	"bytes"
	"os/exec"
	"sync"

	"github.com/hostwick/iisfixture/pkg/logger"
)

// Handle owns a running host process. It is created only by a successful
// start and released exactly once via Stop.
type Handle struct {
	// Site and AppPool identify the host, retained for diagnostics.
	Site    string
	AppPool string

	cmd      *exec.Cmd
	output   *syncBuffer
	signaler QuitSignaler

	done    chan struct{} // closed by the reaper once the process exits
	waitErr error         // valid only after done is closed

	stopOnce sync.Once
}

// Pid returns the OS process id of the host.
func (h *Handle) Pid() int {
	return h.cmd.Process.Pid
}

// Exited reports whether the host process has terminated.
func (h *Handle) Exited() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Done returns a channel closed when the host process exits. Callers that
// need deterministic shutdown confirmation can wait on it themselves.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Output returns the stdout/stderr captured from the host so far.
func (h *Handle) Output() string {
	return h.output.String()
}

// Stop delivers the graceful quit signal to the host and releases the
// handle. It does not wait for the process to exit. Signal failures are
// swallowed and reported only as debug log events: failing to signal must
// never fail test cleanup, the process is reaped regardless once it
// exits. Safe to call more than once.
func (h *Handle) Stop() {
	h.stopOnce.Do(func() {
		if h.Exited() {
			logger.Debug().
				Int("pid", h.Pid()).
				Str("site", h.Site).
				Msg("host already exited, nothing to signal")
			return
		}
		if err := h.signaler.SignalQuit(h.Pid()); err != nil {
			logger.Debug().
				Err(err).
				Int("pid", h.Pid()).
				Str("site", h.Site).
				Msg("quit signal not delivered")
			return
		}
		logger.Debug().
			Int("pid", h.Pid()).
			Str("site", h.Site).
			Msg("quit signal delivered")
	})
}

// syncBuffer guards the child's combined output: the exec copier goroutine
// writes while callers read.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
