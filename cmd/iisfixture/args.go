package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostwick/iisfixture/internal/launch"
	"github.com/hostwick/iisfixture/internal/settings"
)

// newArgsCmd builds the args command: render the launch arguments and the
// child environment variables without spawning anything, for
// troubleshooting fixture configuration.
func newArgsCmd(sets func() *settings.Settings) *cobra.Command {
	var cfg launch.Config

	cmd := &cobra.Command{
		Use:   "args",
		Short: "Print the rendered launch arguments without starting the host",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg = sets().Apply(cfg)

			if err := cfg.Validate(); err != nil {
				return err
			}
			resolved := cfg.WithDefaults()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", resolved.ExePath, strings.Join(resolved.Args(), " "))
			fmt.Fprintf(out, "%s=%s\n", launch.EnvAspNetCoreEnvironment, resolved.Environment)
			fmt.Fprintf(out, "%s=%s\n", launch.EnvLauncherPath, resolved.LauncherPath)
			return nil
		},
	}

	addLaunchFlags(cmd.Flags(), &cfg)

	return cmd
}
