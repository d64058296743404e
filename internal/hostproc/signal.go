package hostproc

// QuitSignaler delivers a graceful shutdown request to a host process,
// identified by its OS process id. Implementations are best-effort: a nil
// error means the request was handed to the OS, not that the process
// acted on it. The platform implementation is selected at build time;
// tests substitute their own via WithSignaler.
type QuitSignaler interface {
	SignalQuit(pid int) error
}
