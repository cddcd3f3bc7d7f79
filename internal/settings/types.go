package settings

// Color is an index into the fixed 16-entry terminal palette: the eight
// standard ANSI colors followed by their bright counterparts.
type Color int

// Palette indices, in wire order.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// colorNames is the canonical, case-sensitive name table. Index order is
// part of the file format and must not change.
var colorNames = [16]string{
	"black",
	"red",
	"green",
	"yellow",
	"blue",
	"magenta",
	"cyan",
	"white",
	"bright black",
	"bright red",
	"bright green",
	"bright yellow",
	"bright blue",
	"bright magenta",
	"bright cyan",
	"bright white",
}

// String returns the canonical color name.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseColor looks up a color by its canonical name. Matching is
// case-sensitive; "BRIGHT RED" does not match.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if name == n {
			return Color(i), true
		}
	}
	return 0, false
}

// ColorNames returns the canonical color names in palette order.
func ColorNames() []string {
	return colorNames[:]
}

// C64Model selects the default machine model.
type C64Model int

const (
	PAL C64Model = iota
	NTSC
	OldNTSC
	Drean
)

func (m C64Model) String() string {
	switch m {
	case PAL:
		return "PAL"
	case NTSC:
		return "NTSC"
	case OldNTSC:
		return "OLD_NTSC"
	case Drean:
		return "DREAN"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m C64Model) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// CIAModel selects the CIA chip revision.
type CIAModel int

const (
	MOS6526 CIAModel = iota
	MOS8521
)

func (m CIAModel) String() string {
	switch m {
	case MOS6526:
		return "MOS6526"
	case MOS8521:
		return "MOS8521"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m CIAModel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// SIDModel selects the SID chip revision.
type SIDModel int

const (
	MOS6581 SIDModel = iota
	MOS8580
)

func (m SIDModel) String() string {
	switch m {
	case MOS6581:
		return "MOS6581"
	case MOS8580:
		return "MOS8580"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SIDModel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// SamplingMethod selects the resampling strategy.
type SamplingMethod int

const (
	Interpolate SamplingMethod = iota
	Resample
)

func (m SamplingMethod) String() string {
	switch m {
	case Interpolate:
		return "INTERPOLATE"
	case Resample:
		return "RESAMPLE"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SamplingMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// CWStrength selects the combined waveforms strength.
type CWStrength int

const (
	Average CWStrength = iota
	Weak
	Strong
)

func (s CWStrength) String() string {
	switch s {
	case Average:
		return "AVERAGE"
	case Weak:
		return "WEAK"
	case Strong:
		return "STRONG"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s CWStrength) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
