package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hostwick/iisfixture/internal/settings"
	"github.com/hostwick/iisfixture/pkg/logger"
)

// newInitCmd builds the init command: write a starter settings file in
// the working directory so teams can check shared defaults into the
// repository. An existing file is never overwritten.
func newInitCmd() *cobra.Command {
	var exePath string
	var environment string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter " + settings.FileName + " in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			workDir, err := os.Getwd()
			if err != nil {
				return err
			}
			path := filepath.Join(workDir, settings.FileName)

			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", settings.FileName)
			}

			s := settings.Default()
			s.ExePath = exePath
			s.Environment = environment

			if err := s.Save(path); err != nil {
				return err
			}

			logger.Info().Str("path", path).Msg("settings file created")
			return nil
		},
	}

	cmd.Flags().StringVar(&exePath, "exe", "", "Host executable path to record as the ambient default")
	cmd.Flags().StringVar(&environment, "environment", "", "Hosting environment name to record as the ambient default")

	return cmd
}
