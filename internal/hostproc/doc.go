// Package hostproc owns the host-process lifecycle: spawning the external
// web-server host, verifying it survived startup, and shutting it down by
// delivering a graceful quit signal instead of killing it.
//
// The outcome of a start attempt is a three-variant Result: the NotStarted
// singleton before any attempt, Failed carrying the cause, or Started
// owning the live Handle. Start never returns an error and never panics;
// everything, including configuration validation, is normalized into a
// failed result. Callers that would rather fail fast use StartStrict.
//
// Shutdown goes through the QuitSignaler capability so the platform
// adapter stays swappable. On Windows the adapter walks the desktop's
// top-level windows and posts WM_QUIT to the first one owned by the host
// process; elsewhere it falls back to SIGTERM. Signal delivery is
// best-effort throughout: a host with no window, an exit race, or a
// window-system refusal never surfaces as an error from Stop.
package hostproc
