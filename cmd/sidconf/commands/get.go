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
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <section> <key>",
	Short: "Print the raw value of a key",
	Long: `Print the stored text of a key exactly as it appears in the file,
before any coercion. Section and key names are case-sensitive; with
duplicate keys the first occurrence wins, matching the player.`,
	Example: `  sidconf get Audio Frequency
  sidconf get SIDPlayfp "Songlength Database"`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
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

	value, ok := sec.Value(key)
	if !ok {
		return sidconferrors.NewUserError(
			errors.Wrapf(sidconferrors.ErrKeyNotFound, "[%s] %s", section, key),
			"Run: sidconf show")
	}

	fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
