//go:build !windows

package hostproc

import (
	"os"
	"syscall"
)

// platformSignaler sends SIGTERM. Outside Windows there is no message
// loop to post to; stand-in host processes used on CI handle SIGTERM as
// their graceful shutdown request.
type platformSignaler struct{}

func (platformSignaler) SignalQuit(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return p.Signal(syscall.SIGTERM)
}
