package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sidconf/internal/config"
	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
	"github.com/thoreinstein/sidconf/internal/logging"
	"github.com/thoreinstein/sidconf/internal/paths"
	"github.com/thoreinstein/sidconf/internal/settings"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a fully populated configuration file",
	Long: `Run one load cycle against the configuration file, creating it if
necessary. A fresh file gains all four sections with every key the
player reads, each with an empty value so the built-in defaults apply.

An existing file keeps its values, comments and layout; only missing
keys are added.`,
	Example: `  # Populate the default XDG location
  sidconf init

  # Populate a specific file
  sidconf init --config ./sidplayfp.ini`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, _ []string) error {
	path := config.File()

	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return sidconferrors.NewSystemError(err, "check permissions on the config directory")
	}

	if _, err := settings.Load(path, logging.FromContext(cmd.Context())); err != nil {
		return sidconferrors.NewConfigError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
