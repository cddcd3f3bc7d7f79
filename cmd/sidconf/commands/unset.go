package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sidconf/internal/config"
	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
	"github.com/thoreinstein/sidconf/internal/ini"
)

func init() {
	rootCmd.AddCommand(unsetCmd)
}

var unsetCmd = &cobra.Command{
	Use:   "unset <section> <key>",
	Short: "Remove a key from the configuration file",
	Long: `Remove every occurrence of a key from a section. The player falls back
to its built-in default for removed keys. Comment lines in the section
are kept.`,
	Example: `  sidconf unset Audio Frequency
  sidconf unset Emulation SidModel`,
	Args: cobra.ExactArgs(2),
	RunE: runUnset,
}

func runUnset(cmd *cobra.Command, args []string) error {
	section, key := args[0], args[1]

	doc, err := ini.Load(config.File())
	if err != nil {
		return sidconferrors.NewConfigError(err)
	}

	sec, ok := doc.Section(section)
	if !ok {
		return sidconferrors.NewUserError(
			errors.Wrapf(sidconferrors.ErrSectionNotFound, "[%s]", section),
			"Run: sidconf show")
	}
	if _, ok := sec.Value(key); !ok {
		return sidconferrors.NewUserError(
			errors.Wrapf(sidconferrors.ErrKeyNotFound, "[%s] %s", section, key),
			"Run: sidconf show")
	}

	sec.RemoveValue(key)

	if err := doc.Close(); err != nil {
		return sidconferrors.NewSystemError(err, "check permissions on the config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "removed [%s] %s\n", section, key)
	return nil
}
