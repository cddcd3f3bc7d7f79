package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
)

func TestValidateValue(t *testing.T) {
	tests := []struct {
		name    string
		section string
		key     string
		value   string
		wantErr error
	}{
		{"int ok", SectionAudio, "Frequency", "44100", nil},
		{"int bad", SectionAudio, "Frequency", "fast", sidconferrors.ErrInvalidValue},
		{"double ok", SectionEmulation, "FilterBias", "0.5", nil},
		{"double bad", SectionEmulation, "FilterBias", "half", sidconferrors.ErrInvalidValue},
		{"bool ok", SectionEmulation, "UseFilter", "true", nil},
		{"bool bad", SectionEmulation, "UseFilter", "yes", sidconferrors.ErrInvalidValue},
		{"time ok", SectionSIDPlayfp, "Default Play Length", "1:30.500", nil},
		{"time bad", SectionSIDPlayfp, "Default Play Length", "100:00", sidconferrors.ErrInvalidValue},
		{"color ok", SectionConsole, "Color Title", "bright red", nil},
		{"color bad case", SectionConsole, "Color Title", "BRIGHT RED", sidconferrors.ErrUnknownColor},
		{"enum ok", SectionEmulation, "SidModel", "MOS8580", nil},
		{"enum legacy sampling", SectionEmulation, "Sampling", "RESAMPLE_INTERPOLATE", nil},
		{"enum bad", SectionEmulation, "C64Model", "SPECTRUM", sidconferrors.ErrInvalidValue},
		{"free-form path", SectionSIDPlayfp, "Kernal Rom", "not a rom at all", nil},
		{"empty keeps default", SectionAudio, "Frequency", "", nil},
		{"unknown key", SectionAudio, "Loudness", "11", nil},
		{"unknown section", "MyStuff", "Foo", "bar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateValue(tt.section, tt.key, tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateValue_CoversEveryKnownKey(t *testing.T) {
	for section, keys := range KnownKeys {
		for _, key := range keys {
			if _, ok := keyKinds[section][key]; !ok {
				t.Errorf("key [%s] %s has no validation kind", section, key)
			}
		}
	}
}
