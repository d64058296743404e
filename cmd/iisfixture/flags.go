package main

import (
	"github.com/spf13/pflag"

	"github.com/hostwick/iisfixture/internal/launch"
)

// addLaunchFlags registers the launch configuration flags shared by the
// run and args commands.
func addLaunchFlags(flags *pflag.FlagSet, cfg *launch.Config) {
	flags.StringVar(&cfg.ConfigPath, "config", "", "Path to applicationhost.config (required)")
	flags.StringVar(&cfg.Site, "site", "", "Site name (required)")
	flags.StringVar(&cfg.AppPool, "apppool", "", "Application pool name (required)")
	flags.StringVar(&cfg.LauncherPath, "launcher", "", "Launcher path relative to the site root (required)")
	flags.StringVar(&cfg.ExePath, "exe", "", "Host executable path (default: the standard IIS Express install)")
	flags.StringVar(&cfg.Environment, "environment", "", "Hosting environment name (default: Development)")
}
