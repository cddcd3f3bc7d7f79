package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/sidconf/internal/config"
	"github.com/thoreinstein/sidconf/internal/paths"
)

var pathSonglengths bool

func init() {
	pathCmd.Flags().BoolVar(&pathSonglengths, "songlengths", false,
		"print the default songlength database path instead")
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the resolved configuration file path",
	Long: `Print the path of the configuration file sidconf operates on, after
resolving the --config flag and the SIDCONF_CONFIG environment variable.`,
	Example: `  # Where is my config?
  sidconf path

  # Where does the songlength database fallback look?
  sidconf path --songlengths`,
	Run: func(cmd *cobra.Command, _ []string) {
		if pathSonglengths {
			fmt.Fprintln(cmd.OutOrStdout(), paths.SonglengthsFile())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.File())
	},
}
