package commands

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/sidconf/internal/config"
	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
	"github.com/thoreinstein/sidconf/internal/ini"
	"github.com/thoreinstein/sidconf/internal/settings"
)

// colorKeys are the [Console] keys that take a color name, in file order.
var colorKeys = []string{
	"Color Decorations",
	"Color Title",
	"Color Label Core",
	"Color Text Core",
	"Color Label Extra",
	"Color Text Extra",
	"Color Notes",
	"Color Control On",
	"Color Control Off",
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme [color-key]",
	Short: "Pick console colors interactively",
	Long: `Choose one of the 16 fixed color names for a [Console] color key using
a fuzzy finder. Without an argument the key is picked interactively too.

Color names are case-sensitive in the file; the picker always writes the
exact spelling the player recognizes.`,
	Example: `  # Pick both the key and the color
  sidconf theme

  # Pick a color for a specific key
  sidconf theme "Color Title"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	var key string
	if len(args) == 1 {
		key = args[0]
		if !isColorKey(key) {
			return sidconferrors.NewUserError(
				errors.Newf("%q is not a color key", key),
				"valid keys: "+strings.Join(colorKeys, ", "))
		}
	} else {
		idx, err := fuzzyfinder.Find(
			colorKeys,
			func(i int) string { return colorKeys[i] },
		)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return errors.Wrap(err, "picking color key")
		}
		key = colorKeys[idx]
	}

	doc, err := ini.OpenOrCreate(config.File())
	if err != nil {
		return sidconferrors.NewConfigError(err)
	}

	current := ""
	sec, ok := doc.Section(settings.SectionConsole)
	if ok {
		current, _ = sec.Value(key)
	}

	names := settings.ColorNames()
	idx, err := fuzzyfinder.Find(
		names,
		func(i int) string { return names[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			marker := ""
			if names[i] == current {
				marker = " (current)"
			}
			return fmt.Sprintf("Key: %s\nColor: %s (index %d)%s", key, names[i], i, marker)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "picking color")
	}

	if !ok {
		sec = doc.AddSection(settings.SectionConsole)
	}
	sec.SetValue(key, names[idx])

	if err := doc.Close(); err != nil {
		return sidconferrors.NewSystemError(err, "check permissions on the config file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s = %s\n", settings.SectionConsole, key, names[idx])
	return nil
}

func isColorKey(key string) bool {
	for _, k := range colorKeys {
		if k == key {
			return true
		}
	}
	return false
}
