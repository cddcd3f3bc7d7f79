package settings

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	sidconferrors "github.com/thoreinstein/sidconf/internal/errors"
)

// kind identifies the coercion a typed key goes through when read.
type kind int

const (
	kindString kind = iota
	kindInt
	kindDouble
	kindBool
	kindTime
	kindColor
	kindC64Model
	kindCIAModel
	kindSIDModel
	kindSampling
	kindCWStrength
)

// keyKinds maps every known key to its coercion. Keys absent from this map
// (and whole unknown sections) are free-form text.
var keyKinds = map[string]map[string]kind{
	SectionSIDPlayfp: {
		"Version":               kindInt,
		"Songlength Database":   kindString,
		"Default Play Length":   kindTime,
		"Default Record Length": kindTime,
		"Kernal Rom":            kindString,
		"Basic Rom":             kindString,
		"Chargen Rom":           kindString,
		"VerboseLevel":          kindInt,
	},
	SectionConsole: {
		"Ansi":              kindBool,
		"ASCII":             kindBool,
		"Color Decorations": kindColor,
		"Color Title":       kindColor,
		"Color Label Core":  kindColor,
		"Color Text Core":   kindColor,
		"Color Label Extra": kindColor,
		"Color Text Extra":  kindColor,
		"Color Notes":       kindColor,
		"Color Control On":  kindColor,
		"Color Control Off": kindColor,
	},
	SectionAudio: {
		"Frequency":     kindInt,
		"Channels":      kindInt,
		"BitsPerSample": kindInt,
		"BufferLength":  kindInt,
	},
	SectionEmulation: {
		"Engine":            kindString,
		"C64Model":          kindC64Model,
		"ForceC64Model":     kindBool,
		"DigiBoost":         kindBool,
		"CiaModel":          kindCIAModel,
		"SidModel":          kindSIDModel,
		"ForceSidModel":     kindBool,
		"UseFilter":         kindBool,
		"FilterBias":        kindDouble,
		"FilterCurve6581":   kindDouble,
		"FilterRange6581":   kindDouble,
		"FilterCurve8580":   kindDouble,
		"CombinedWaveforms": kindCWStrength,
		"PowerOnDelay":      kindInt,
		"Sampling":          kindSampling,
		"ResidFastSampling": kindBool,
	},
}

// ValidateValue reports whether value would coerce for the given section and
// key. Unknown sections and keys always validate; they are stored verbatim.
// Empty values always validate, since the reader treats them as "keep the
// default".
func ValidateValue(section, key, value string) error {
	keys, ok := keyKinds[section]
	if !ok {
		return nil
	}
	k, ok := keys[key]
	if !ok {
		return nil
	}
	if value == "" {
		return nil
	}

	switch k {
	case kindString:
		return nil
	case kindInt:
		if _, err := parseInt(value); err != nil {
			return invalid(value, "an integer")
		}
	case kindDouble:
		if _, err := parseDouble(value); err != nil {
			return invalid(value, "a number")
		}
	case kindBool:
		if _, err := parseBool(value); err != nil {
			return invalid(value, "true or false")
		}
	case kindTime:
		if _, err := parseTime(value); err != nil {
			return invalid(value, "seconds or MM:SS[.mmm]")
		}
	case kindColor:
		if _, ok := ParseColor(value); !ok {
			return errors.Wrapf(sidconferrors.ErrUnknownColor,
				"%q (valid: %s)", value, strings.Join(ColorNames(), ", "))
		}
	case kindC64Model:
		return validateEnum(value, c64Models)
	case kindCIAModel:
		return validateEnum(value, ciaModels)
	case kindSIDModel:
		return validateEnum(value, sidModels)
	case kindSampling:
		return validateEnum(value, samplingMethods)
	case kindCWStrength:
		return validateEnum(value, cwStrengths)
	}
	return nil
}

func invalid(value, want string) error {
	return errors.Wrapf(sidconferrors.ErrInvalidValue, "%q is not %s", value, want)
}

func validateEnum[T any](value string, allowed map[string]T) error {
	if _, ok := allowed[value]; ok {
		return nil
	}

	names := make([]string, 0, len(allowed))
	for name := range allowed {
		names = append(names, name)
	}
	slices.Sort(names)
	return errors.Wrapf(sidconferrors.ErrInvalidValue,
		"%q is not one of %s", value, strings.Join(names, ", "))
}
