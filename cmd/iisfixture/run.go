package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hostwick/iisfixture/internal/fixture"
	"github.com/hostwick/iisfixture/internal/hostproc"
	"github.com/hostwick/iisfixture/internal/launch"
	"github.com/hostwick/iisfixture/internal/settings"
	"github.com/hostwick/iisfixture/pkg/logger"
)

// newRunCmd builds the run command: start the host through a fixture,
// optionally wait for it to answer HTTP, then block until an interrupt
// or until the host exits on its own, and stop it gracefully.
func newRunCmd(sets func() *settings.Settings) *cobra.Command {
	var cfg launch.Config
	var strict bool
	var readyURL string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the host and stop it gracefully on interrupt",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sets()
			cfg = s.Apply(cfg)

			srv := fixture.New(cfg, fixture.WithReadyTimeout(s.ReadyTimeout))
			defer srv.Close()

			var res *hostproc.Result
			if strict {
				var err error
				res, err = srv.SetupStrict()
				if err != nil {
					return err
				}
			} else {
				res = srv.Setup()
				if !res.Started() {
					return res.Err()
				}
			}

			h := res.Handle()
			logger.SetContext(h.Site, h.AppPool)
			defer logger.ClearContext()

			if readyURL != "" {
				logger.Info().
					Str("url", readyURL).
					Dur("timeout", s.ReadyTimeout).
					Msg("waiting for host to answer")
				if err := srv.WaitReady(cmd.Context(), readyURL); err != nil {
					if strict {
						return err
					}
					logger.Warn().Err(err).Msg("continuing without readiness confirmation")
				}
			}

			logger.Info().
				Int("pid", h.Pid()).
				Msg("host running, press Ctrl+C to stop")

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)

			select {
			case sig := <-sigCh:
				logger.Info().
					Str("signal", sig.String()).
					Msg("stopping host")
			case <-h.Done():
				logger.Warn().Msg("host exited on its own")
				if out := h.Output(); out != "" {
					logger.Debug().Str("output", out).Msg("host output")
				}
			}

			return nil
		},
	}

	addLaunchFlags(cmd.Flags(), &cfg)
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail fast with an error instead of a quiet failed result")
	cmd.Flags().StringVar(&readyURL, "url", "", "URL to poll until the host answers before reporting it running")

	return cmd
}
