package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hostwick/iisfixture/internal/settings"
	"github.com/hostwick/iisfixture/pkg/logger"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// newRootCmd builds the iisfixture command tree. Ambient settings are
// resolved once before any subcommand runs and shared with the
// subcommands through the sets accessor.
func newRootCmd() *cobra.Command {
	var debug bool
	var loaded *settings.Settings

	sets := func() *settings.Settings { return loaded }

	cmd := &cobra.Command{
		Use:   "iisfixture",
		Short: "Launch and control a local IIS Express host process",
		Long: `iisfixture manages the lifecycle of a local IIS Express host the way the
integration-test fixtures do: build the launch arguments, start the host,
verify it survived startup, and shut it down by posting a quit message to
its hidden message loop instead of killing it.

Quick start:
  iisfixture args --config C:\x\applicationhost.config --site S1 --apppool P1 --launcher bin\app.exe
  iisfixture run  --config C:\x\applicationhost.config --site S1 --apppool P1 --launcher bin\app.exe`,
		SilenceUsage: true,
		Version:      Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init(debug)

			s, err := loadSettings()
			if err != nil {
				return err
			}
			loaded = s

			if err := logger.InitWithFile(debug, s.Logging.Dir, s.LoggerConfig()); err != nil {
				return err
			}

			logger.Debug().
				Str("version", Version).
				Str("commit", Commit).
				Msg("iisfixture starting")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.CloseFileWriter()
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd(sets))
	cmd.AddCommand(newArgsCmd(sets))
	cmd.AddCommand(newInitCmd())

	return cmd
}

// loadSettings resolves ambient settings from the working directory.
func loadSettings() (*settings.Settings, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return settings.Load(workDir)
}
