package hostproc

import (
	"os/exec"
	"time"

	"github.com/hostwick/iisfixture/internal/launch"
	"github.com/hostwick/iisfixture/pkg/logger"
)

// defaultExitProbe is how long Start watches a freshly spawned process for
// an immediate exit before declaring it alive.
const defaultExitProbe = 150 * time.Millisecond

// Controller spawns and verifies host processes. One controller per
// logical test-server lifetime; Start is a synchronous, blocking call and
// runs to completion once invoked.
type Controller struct {
	signaler  QuitSignaler
	exitProbe time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithSignaler overrides the platform quit signaler. Tests use it to stub
// out window-system interaction.
func WithSignaler(s QuitSignaler) Option {
	return func(c *Controller) {
		c.signaler = s
	}
}

// WithExitProbe overrides how long Start watches for an immediate exit.
func WithExitProbe(d time.Duration) Option {
	return func(c *Controller) {
		c.exitProbe = d
	}
}

// NewController creates a controller using the platform quit signaler.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		signaler:  platformSignaler{},
		exitProbe: defaultExitProbe,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start launches the host described by cfg and verifies it did not die on
// the way up. Every failure mode, validation included, is reported through
// the returned result: Start never panics and never returns an error.
func (c *Controller) Start(cfg launch.Config) *Result {
	res, _ := c.StartStrict(cfg)
	return res
}

// StartStrict behaves like Start but additionally returns the failure
// cause, for callers that must not let a failed launch slip past as a
// quiet result value.
func (c *Controller) StartStrict(cfg launch.Config) (res *Result, err error) {
	defer func() {
		if v := recover(); v != nil {
			perr := ErrLaunchPanicked(v)
			res, err = newFailed(perr), perr
		}
	}()

	if verr := cfg.Validate(); verr != nil {
		logger.Error().Err(verr).Msg("host launch rejected")
		return newFailed(verr), verr
	}
	cfg = cfg.WithDefaults()

	out := &syncBuffer{}
	// exec.Command runs the executable directly, no shell in between.
	cmd := exec.Command(cfg.ExePath, cfg.Args()...)
	cmd.Env = cfg.Env()
	cmd.Stdout = out
	cmd.Stderr = out

	if serr := cmd.Start(); serr != nil {
		lerr := ErrLaunchFailed(serr)
		logger.Error().
			Err(serr).
			Str("exe", cfg.ExePath).
			Msg("host process failed to launch")
		return newFailed(lerr), lerr
	}

	h := &Handle{
		Site:     cfg.Site,
		AppPool:  cfg.AppPool,
		cmd:      cmd,
		output:   out,
		signaler: c.signaler,
		done:     make(chan struct{}),
	}

	// Reap the process as soon as it exits so it never lingers as a zombie.
	go func() {
		h.waitErr = cmd.Wait()
		close(h.done)
	}()

	// A host that dies during startup (bad config path, port already
	// bound) does so within milliseconds; a short probe separates
	// "spawned but crashed" from "spawned and running".
	select {
	case <-h.done:
		eerr := ErrExitedEarly(cfg.Site, h.waitErr)
		logger.Error().
			Err(eerr).
			Str("output", out.String()).
			Msg("host process exited during startup")
		return newFailed(eerr), eerr
	case <-time.After(c.exitProbe):
	}

	logger.Info().
		Int("pid", h.Pid()).
		Str("site", cfg.Site).
		Str("apppool", cfg.AppPool).
		Msg("host process started")

	return newStarted(h), nil
}
