package fixture

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/hostwick/iisfixture/internal/hostproc"
	"github.com/hostwick/iisfixture/internal/launch"
	"github.com/hostwick/iisfixture/pkg/logger"
)

// defaultReadyTimeout bounds WaitReady when the caller's context carries
// no deadline of its own.
const defaultReadyTimeout = 30 * time.Second

// ErrNotStarted indicates an operation that needs a running host was
// called while the retained result is not the started variant.
var ErrNotStarted = errors.New("host process is not started")

// Server manages one host process for the duration of a test: Setup
// launches it and retains the outcome, Close stops it. A zero result is
// hostproc.NotStarted until the first Setup.
type Server struct {
	cfg          launch.Config
	ctrl         *hostproc.Controller
	result       *hostproc.Result
	readyTimeout time.Duration
	httpClient   *http.Client
}

// Option configures a Server.
type Option func(*Server)

// WithController substitutes the process controller, typically one whose
// quit signaler is stubbed.
func WithController(c *hostproc.Controller) Option {
	return func(s *Server) {
		s.ctrl = c
	}
}

// WithReadyTimeout overrides the default readiness polling budget.
func WithReadyTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.readyTimeout = d
	}
}

// WithHTTPClient substitutes the client used for readiness polling.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Server) {
		s.httpClient = c
	}
}

// New creates a fixture for the given launch configuration.
func New(cfg launch.Config, opts ...Option) *Server {
	s := &Server{
		cfg:          cfg,
		ctrl:         hostproc.NewController(),
		result:       hostproc.NotStarted,
		readyTimeout: defaultReadyTimeout,
		httpClient:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Setup launches the host and retains the outcome until Close. Like the
// controller it never returns an error; inspect the result.
func (s *Server) Setup() *hostproc.Result {
	s.result = s.ctrl.Start(s.cfg)
	return s.result
}

// SetupStrict launches the host and additionally surfaces the failure
// cause as an error, for callers that must not overlook a failed launch.
// The result is retained either way.
func (s *Server) SetupStrict() (*hostproc.Result, error) {
	res, err := s.ctrl.StartStrict(s.cfg)
	s.result = res
	return res, err
}

// Result returns the outcome of the last Setup, or hostproc.NotStarted
// if Setup has not run.
func (s *Server) Result() *hostproc.Result {
	return s.result
}

// Close stops the host if one was started. Safe to call more than once
// and safe to call after a failed or absent Setup.
func (s *Server) Close() {
	if s.result.Started() {
		s.result.Handle().Stop()
	}
}

// WaitReady polls url with exponential backoff until the host answers,
// the context is canceled, or the ready timeout elapses. Any HTTP
// response counts as ready; the fixture makes no claims about the
// application's behavior beyond "the host is accepting connections".
func (s *Server) WaitReady(ctx context.Context, url string) error {
	if !s.result.Started() {
		return ErrNotStarted
	}

	probe := func() (struct{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		resp, err := s.httpClient.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		_ = resp.Body.Close()
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, probe,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(s.readyTimeout),
	)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("url", url).
			Str("site", s.cfg.Site).
			Msg("host did not become ready")
		return err
	}

	logger.Debug().
		Str("url", url).
		Str("site", s.cfg.Site).
		Msg("host ready")
	return nil
}
