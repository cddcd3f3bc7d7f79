package settings

import (
	"log/slog"
	"os"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/sidconf/internal/ini"
	"github.com/thoreinstein/sidconf/internal/paths"
)

// Reader populates a Settings record from an open document, inserting empty
// placeholders for missing keys so the file self-documents on first run.
//
// Coercion failures are reported through the logger and leave the target
// field unchanged; they never abort population.
type Reader struct {
	doc *ini.Document
	log *slog.Logger
}

// NewReader creates a Reader over doc. A nil logger falls back to
// slog.Default.
func NewReader(doc *ini.Document, log *slog.Logger) *Reader {
	if log == nil {
		log = slog.Default()
	}
	return &Reader{doc: doc, log: log}
}

// Read populates s group by group, in fixed order. Sections missing from
// the document are created.
func (r *Reader) Read(s *Settings) {
	r.readSIDPlayfp(s)
	r.readConsole(s)
	r.readAudio(s)
	r.readEmulation(s)
}

// section selects the named section, creating it when absent.
func (r *Reader) section(name string) *ini.Section {
	sec, ok := r.doc.Section(name)
	if !ok {
		sec = r.doc.AddSection(name)
	}
	return sec
}

// readKey applies the fallback policy: a missing key is inserted with an
// empty value, and both missing and empty-valued keys read as "no value".
func (r *Reader) readKey(sec *ini.Section, key string) (string, bool) {
	value, ok := sec.Value(key)
	if !ok {
		sec.AddValue(key, "")
		r.log.Debug("key not present, adding placeholder", "section", sec.Name(), "key", key)
		return "", false
	}
	if value == "" {
		return "", false
	}
	return value, true
}

// readString reads a key as a raw string, inserting a placeholder when
// absent. Unlike readKey it passes an empty present value through as "".
func (r *Reader) readString(sec *ini.Section, key string) string {
	value, ok := sec.Value(key)
	if !ok {
		sec.AddValue(key, "")
		r.log.Debug("key not present, adding placeholder", "section", sec.Name(), "key", key)
		return ""
	}
	return value
}

func (r *Reader) readInt(sec *ini.Section, key string, out *int) {
	value, ok := r.readKey(sec, key)
	if !ok {
		return
	}
	n, err := parseInt(value)
	if err != nil {
		r.log.Warn("cannot parse integer", "section", sec.Name(), "key", key, "value", value)
		return
	}
	*out = n
}

func (r *Reader) readDouble(sec *ini.Section, key string, out *float64) {
	value, ok := r.readKey(sec, key)
	if !ok {
		return
	}
	f, err := parseDouble(value)
	if err != nil {
		r.log.Warn("cannot parse double", "section", sec.Name(), "key", key, "value", value)
		return
	}
	*out = f
}

func (r *Reader) readBool(sec *ini.Section, key string, out *bool) {
	value, ok := r.readKey(sec, key)
	if !ok {
		return
	}
	b, err := parseBool(value)
	if err != nil {
		r.log.Warn("cannot parse bool", "section", sec.Name(), "key", key, "value", value)
		return
	}
	*out = b
}

// readChar reads a single printable character, given either as a quoted
// literal of the exact form 'x' or as a bare character code. Codes below 32
// are rejected and leave the field unchanged.
func (r *Reader) readChar(sec *ini.Section, key string, out *byte) {
	str := r.readString(sec, key)
	if str == "" {
		return
	}

	var c byte
	if str[0] == '\'' {
		if len(str) < 3 || str[2] != '\'' {
			return
		}
		c = str[1]
	} else {
		n, err := parseInt(str)
		if err != nil {
			r.log.Warn("cannot parse character code", "section", sec.Name(), "key", key, "value", str)
			return
		}
		c = byte(n)
	}

	if c >= 32 {
		*out = c
	}
}

// readTime reads a play/record length. The second return reports whether a
// valid value was found; the caller keeps its default otherwise.
func (r *Reader) readTime(sec *ini.Section, key string) (time.Duration, bool) {
	str := r.readString(sec, key)
	if str == "" {
		return 0, false
	}

	d, err := parseTime(str)
	switch {
	case err == nil:
		return d, true
	case errors.Is(err, errInvalidTime):
		r.log.Warn("invalid time", "section", sec.Name(), "key", key, "value", str)
	default:
		r.log.Warn("cannot parse time", "section", sec.Name(), "key", key, "value", str)
	}
	return 0, false
}

// readColor reads one of the 16 fixed color names. Unrecognized names are
// ignored silently, unlike numeric coercion failures.
func (r *Reader) readColor(sec *ini.Section, key string, out *Color) {
	str := r.readString(sec, key)
	if str == "" {
		return
	}
	if c, ok := ParseColor(str); ok {
		*out = c
	}
}

// readEnum reads key and stores the mapped constant when the value matches
// an allowed name exactly. Non-matching non-empty values are ignored.
func readEnum[T any](r *Reader, sec *ini.Section, key string, allowed map[string]T, out *T) {
	str := r.readString(sec, key)
	if str == "" {
		return
	}
	if v, ok := allowed[str]; ok {
		*out = v
	}
}

// Allowed enumerated values per key. RESAMPLE_INTERPOLATE is the legacy
// spelling of RESAMPLE and maps to it.
var (
	c64Models = map[string]C64Model{
		"PAL":      PAL,
		"NTSC":     NTSC,
		"OLD_NTSC": OldNTSC,
		"DREAN":    Drean,
	}
	ciaModels = map[string]CIAModel{
		"MOS6526": MOS6526,
		"MOS8521": MOS8521,
	}
	sidModels = map[string]SIDModel{
		"MOS6581": MOS6581,
		"MOS8580": MOS8580,
	}
	samplingMethods = map[string]SamplingMethod{
		"INTERPOLATE":          Interpolate,
		"RESAMPLE":             Resample,
		"RESAMPLE_INTERPOLATE": Resample,
	}
	cwStrengths = map[string]CWStrength{
		"AVERAGE": Average,
		"WEAK":    Weak,
		"STRONG":  Strong,
	}
)

func (r *Reader) readSIDPlayfp(s *Settings) {
	sec := r.section(SectionSIDPlayfp)

	// Zero or negative versions are invalid and keep the default.
	version := s.SIDPlayfp.Version
	r.readInt(sec, "Version", &version)
	if version > 0 {
		s.SIDPlayfp.Version = version
	}

	s.SIDPlayfp.Database = r.readString(sec, "Songlength Database")
	if s.SIDPlayfp.Database == "" {
		if p := paths.SonglengthsFile(); isReadableFile(p) {
			s.SIDPlayfp.Database = p
		}
	}

	if d, ok := r.readTime(sec, "Default Play Length"); ok {
		s.SIDPlayfp.PlayLength = d
	}
	if d, ok := r.readTime(sec, "Default Record Length"); ok {
		s.SIDPlayfp.RecordLength = d
	}

	s.SIDPlayfp.KernalROM = r.readString(sec, "Kernal Rom")
	s.SIDPlayfp.BasicROM = r.readString(sec, "Basic Rom")
	s.SIDPlayfp.ChargenROM = r.readString(sec, "Chargen Rom")

	r.readInt(sec, "VerboseLevel", &s.SIDPlayfp.VerboseLevel)
}

func (r *Reader) readConsole(s *Settings) {
	sec := r.section(SectionConsole)

	// ASCII mode overwrites the border glyphs before anything else; the
	// individual glyphs themselves are never read from the file.
	var ascii bool
	r.readBool(sec, "ASCII", &ascii)
	if ascii {
		s.Console.asciiGlyphs()
	}

	r.readBool(sec, "Ansi", &s.Console.ANSI)

	r.readColor(sec, "Color Decorations", &s.Console.Decorations)
	r.readColor(sec, "Color Title", &s.Console.Title)
	r.readColor(sec, "Color Label Core", &s.Console.LabelCore)
	r.readColor(sec, "Color Text Core", &s.Console.TextCore)
	r.readColor(sec, "Color Label Extra", &s.Console.LabelExtra)
	r.readColor(sec, "Color Text Extra", &s.Console.TextExtra)
	r.readColor(sec, "Color Notes", &s.Console.Notes)
	r.readColor(sec, "Color Control On", &s.Console.ControlOn)
	r.readColor(sec, "Color Control Off", &s.Console.ControlOff)
}

func (r *Reader) readAudio(s *Settings) {
	sec := r.section(SectionAudio)

	r.readInt(sec, "Frequency", &s.Audio.Frequency)
	r.readInt(sec, "Channels", &s.Audio.Channels)
	r.readInt(sec, "BitsPerSample", &s.Audio.Precision)
	r.readInt(sec, "BufferLength", &s.Audio.BufferLength)
}

func (r *Reader) readEmulation(s *Settings) {
	sec := r.section(SectionEmulation)

	s.Emulation.Engine = r.readString(sec, "Engine")

	readEnum(r, sec, "C64Model", c64Models, &s.Emulation.Model)
	r.readBool(sec, "ForceC64Model", &s.Emulation.ModelForced)
	r.readBool(sec, "DigiBoost", &s.Emulation.DigiBoost)
	readEnum(r, sec, "CiaModel", ciaModels, &s.Emulation.CIA)
	readEnum(r, sec, "SidModel", sidModels, &s.Emulation.SID)
	r.readBool(sec, "ForceSidModel", &s.Emulation.SIDForced)

	r.readBool(sec, "UseFilter", &s.Emulation.Filter)
	r.readDouble(sec, "FilterBias", &s.Emulation.Bias)
	r.readDouble(sec, "FilterCurve6581", &s.Emulation.FilterCurve6581)

	// The range key used to ship with a lowercase name; migrate it so the
	// file carries the current spelling.
	if v, ok := sec.Value("filterRange6581"); ok && v != "" {
		sec.AddValue("FilterRange6581", v)
		sec.RemoveValue("filterRange6581")
	}
	r.readDouble(sec, "FilterRange6581", &s.Emulation.FilterRange6581)

	r.readDouble(sec, "FilterCurve8580", &s.Emulation.FilterCurve8580)

	readEnum(r, sec, "CombinedWaveforms", cwStrengths, &s.Emulation.CombinedWaveforms)

	r.readInt(sec, "PowerOnDelay", &s.Emulation.PowerOnDelay)

	readEnum(r, sec, "Sampling", samplingMethods, &s.Emulation.Sampling)
	r.readBool(sec, "ResidFastSampling", &s.Emulation.FastSampling)
}

// isReadableFile reports whether path is a regular file readable by owner,
// group and others, the condition the songlength database fallback requires.
func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular() && info.Mode().Perm()&0o444 == 0o444
}
