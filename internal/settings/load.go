package settings

import (
	"log/slog"

	"github.com/thoreinstein/sidconf/internal/ini"
)

// Load reads the configuration file at path, creating it if absent, and
// returns the populated settings. Missing sections and keys are written
// back to the file as part of the same cycle.
//
// The returned Settings is always usable: on error it holds the defaults
// plus whatever was applied before the failure.
func Load(path string, log *slog.Logger) (*Settings, error) {
	s := Defaults()

	doc, err := ini.OpenOrCreate(path)
	if err != nil {
		return s, err
	}

	NewReader(doc, log).Read(s)

	if err := doc.Close(); err != nil {
		return s, err
	}
	return s, nil
}
