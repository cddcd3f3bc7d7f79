package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sidconf/internal/config"
	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
	"github.com/thoreinstein/sidconf/internal/ini"
	"github.com/thoreinstein/sidconf/internal/settings"
)

var setForce bool

func init() {
	setCmd.Flags().BoolVar(&setForce, "force", false,
		"write the value even if it would not coerce for a typed key")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <section> <key> <value>",
	Short: "Set the value of a key",
	Long: `Set a key in the configuration file, creating the section and key as
needed. An existing key is replaced in place, keeping its position;
duplicates are never introduced.

Values for keys the player reads are validated against the player's
coercion rules first, so a typo cannot silently revert a setting to its
default. Use --force to write an invalid value anyway.`,
	Example: `  sidconf set Audio Frequency 44100
  sidconf set Emulation SidModel MOS8580
  sidconf set Console "Color Title" "bright red"
  sidconf set SIDPlayfp "Default Play Length" 3:30`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	section, key, value := args[0], args[1], args[2]

	if !setForce {
		if err := settings.ValidateValue(section, key, value); err != nil {
			return sidconferrors.NewUserError(err,
				"the player would ignore this value; use --force to write it anyway")
		}
	}

	doc, err := ini.OpenOrCreate(config.File())
	if err != nil {
		return sidconferrors.NewConfigError(err)
	}

	sec, ok := doc.Section(section)
	if !ok {
		sec = doc.AddSection(section)
	}
	sec.SetValue(key, value)

	if err := doc.Close(); err != nil {
		return sidconferrors.NewSystemError(err, "check permissions on the config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s = %s\n", section, key, value)
	return nil
}
