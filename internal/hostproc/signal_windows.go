//go:build windows

package hostproc

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// wmQuit asks a message loop to exit cleanly.
const wmQuit = 0x0012

var (
	user32                       = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowThreadProcessID = user32.NewProc("GetWindowThreadProcessId")
	procPostMessageW             = user32.NewProc("PostMessageW")
)

// platformSignaler posts WM_QUIT to the first top-level window owned by
// the target process. The host runs no visible UI but spins a hidden
// message loop that treats WM_QUIT as a clean shutdown request; killing
// the process instead can leave listening ports and lock files in a state
// that breaks subsequent test runs.
type platformSignaler struct{}

// SignalQuit walks the desktop's top-level windows in z-order and posts
// WM_QUIT to the first one owned by pid. At most one message is posted.
// A process with no window yields nil: nothing to signal is not a failure.
func (platformSignaler) SignalQuit(pid int) error {
	target := uint32(pid)
	var postErr error

	cb := syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
		var owner uint32
		procGetWindowThreadProcessID.Call(hwnd, uintptr(unsafe.Pointer(&owner))) //nolint:errcheck
		if owner != target {
			return 1 // keep enumerating
		}
		if r, _, err := procPostMessageW.Call(hwnd, wmQuit, 0, 0); r == 0 {
			postErr = err
		}
		return 0 // first match only
	})

	// EnumWindows reports failure when our callback stops the walk early,
	// so its return value carries no signal here.
	procEnumWindows.Call(cb, 0) //nolint:errcheck

	return postErr
}
