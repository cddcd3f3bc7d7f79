package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cockroachdb/errors"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/sidconf/internal/config"
	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
	"github.com/thoreinstein/sidconf/internal/logging"
	"github.com/thoreinstein/sidconf/internal/settings"
)

var showFormat string

func init() {
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "text",
		"output format: text, json, yaml, toml")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective player settings",
	Long: `Load the configuration file and print the settings the player would
actually use: file values where they coerce, built-in defaults where the
file is silent or invalid.

Missing sections and keys are written back to the file as part of the
load, exactly as the player does on startup.`,
	Example: `  # Human-readable output
  sidconf show

  # Machine-readable output
  sidconf show --format json
  sidconf show --format yaml
  sidconf show --format toml`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, _ []string) error {
	path := config.File()
	s, err := settings.Load(path, logging.FromContext(cmd.Context()))
	if err != nil {
		return sidconferrors.NewConfigError(err)
	}

	out := cmd.OutOrStdout()
	switch showFormat {
	case "text":
		renderText(out, path, s)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(s), "encoding JSON")
	case "yaml":
		data, err := yaml.Marshal(s)
		if err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		fmt.Fprint(out, string(data))
		return nil
	case "toml":
		data, err := toml.Marshal(s)
		if err != nil {
			return errors.Wrap(err, "encoding TOML")
		}
		fmt.Fprint(out, string(data))
		return nil
	default:
		return sidconferrors.NewUserError(
			errors.Newf("unknown format %q", showFormat),
			"valid formats: text, json, yaml, toml")
	}
}

func renderText(w io.Writer, path string, s *settings.Settings) {
	fmt.Fprintf(w, "config: %s\n\n", path)

	fmt.Fprintf(w, "[%s]\n", settings.SectionSIDPlayfp)
	fmt.Fprintf(w, "  version:          %d\n", s.SIDPlayfp.Version)
	fmt.Fprintf(w, "  songlength db:    %s\n", orUnset(s.SIDPlayfp.Database))
	fmt.Fprintf(w, "  play length:      %s\n", formatLength(s.SIDPlayfp.PlayLength))
	fmt.Fprintf(w, "  record length:    %s\n", formatLength(s.SIDPlayfp.RecordLength))
	fmt.Fprintf(w, "  kernal rom:       %s\n", orUnset(s.SIDPlayfp.KernalROM))
	fmt.Fprintf(w, "  basic rom:        %s\n", orUnset(s.SIDPlayfp.BasicROM))
	fmt.Fprintf(w, "  chargen rom:      %s\n", orUnset(s.SIDPlayfp.ChargenROM))
	fmt.Fprintf(w, "  verbose level:    %d\n", s.SIDPlayfp.VerboseLevel)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "[%s]\n", settings.SectionConsole)
	fmt.Fprintf(w, "  ansi:             %t\n", s.Console.ANSI)
	fmt.Fprintf(w, "  border glyphs:    %s%s%s %s%s%s %s %s\n",
		s.Console.TopLeft, s.Console.Horizontal, s.Console.TopRight,
		s.Console.BottomLeft, s.Console.Horizontal, s.Console.BottomRight,
		s.Console.Vertical, s.Console.JunctionLeft)
	fmt.Fprintf(w, "  decorations:      %s\n", s.Console.Decorations)
	fmt.Fprintf(w, "  title:            %s\n", s.Console.Title)
	fmt.Fprintf(w, "  label core:       %s\n", s.Console.LabelCore)
	fmt.Fprintf(w, "  text core:        %s\n", s.Console.TextCore)
	fmt.Fprintf(w, "  label extra:      %s\n", s.Console.LabelExtra)
	fmt.Fprintf(w, "  text extra:       %s\n", s.Console.TextExtra)
	fmt.Fprintf(w, "  notes:            %s\n", s.Console.Notes)
	fmt.Fprintf(w, "  control on/off:   %s / %s\n", s.Console.ControlOn, s.Console.ControlOff)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "[%s]\n", settings.SectionAudio)
	fmt.Fprintf(w, "  frequency:        %d Hz\n", s.Audio.Frequency)
	fmt.Fprintf(w, "  channels:         %s\n", formatChannels(s.Audio.Channels))
	fmt.Fprintf(w, "  bits per sample:  %d\n", s.Audio.Precision)
	fmt.Fprintf(w, "  buffer length:    %d ms\n", s.Audio.BufferLength)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "[%s]\n", settings.SectionEmulation)
	fmt.Fprintf(w, "  engine:           %s\n", orUnset(s.Emulation.Engine))
	fmt.Fprintf(w, "  c64 model:        %s (forced: %t)\n", s.Emulation.Model, s.Emulation.ModelForced)
	fmt.Fprintf(w, "  cia model:        %s\n", s.Emulation.CIA)
	fmt.Fprintf(w, "  sid model:        %s (forced: %t)\n", s.Emulation.SID, s.Emulation.SIDForced)
	fmt.Fprintf(w, "  digiboost:        %t\n", s.Emulation.DigiBoost)
	fmt.Fprintf(w, "  filter:           %t (bias %.2f)\n", s.Emulation.Filter, s.Emulation.Bias)
	fmt.Fprintf(w, "  6581 curve/range: %.2f / %.2f\n", s.Emulation.FilterCurve6581, s.Emulation.FilterRange6581)
	fmt.Fprintf(w, "  8580 curve:       %.2f\n", s.Emulation.FilterCurve8580)
	fmt.Fprintf(w, "  combined waves:   %s\n", s.Emulation.CombinedWaveforms)
	fmt.Fprintf(w, "  power-on delay:   %s\n", formatPowerOnDelay(s.Emulation.PowerOnDelay))
	fmt.Fprintf(w, "  sampling:         %s (fast: %t)\n", s.Emulation.Sampling, s.Emulation.FastSampling)
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func formatLength(d time.Duration) string {
	if d == 0 {
		return "unlimited"
	}
	return d.String()
}

func formatChannels(n int) string {
	switch n {
	case 0:
		return "auto"
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d", n)
	}
}

func formatPowerOnDelay(n int) string {
	if n < 0 {
		return "random"
	}
	return fmt.Sprintf("%d cycles", n)
}
