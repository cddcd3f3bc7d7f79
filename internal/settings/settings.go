package settings

import "time"

// Section and key names as they appear in sidplayfp.ini. Case-sensitive.
const (
	SectionSIDPlayfp = "SIDPlayfp"
	SectionConsole   = "Console"
	SectionAudio     = "Audio"
	SectionEmulation = "Emulation"
)

// DefaultSamplingFreq is the default output frequency in Hz.
const DefaultSamplingFreq = 48000

// DefaultRecordLength is the record length used when the file does not
// override it.
const DefaultRecordLength = 3*time.Minute + 30*time.Second

// SIDPlayfp holds the general/runtime options from the [SIDPlayfp] section.
type SIDPlayfp struct {
	Version      int           `json:"version" yaml:"version" toml:"version"`
	Database     string        `json:"songlength_database" yaml:"songlength_database" toml:"songlength_database"`
	PlayLength   time.Duration `json:"default_play_length" yaml:"default_play_length" toml:"default_play_length"`
	RecordLength time.Duration `json:"default_record_length" yaml:"default_record_length" toml:"default_record_length"`
	KernalROM    string        `json:"kernal_rom" yaml:"kernal_rom" toml:"kernal_rom"`
	BasicROM     string        `json:"basic_rom" yaml:"basic_rom" toml:"basic_rom"`
	ChargenROM   string        `json:"chargen_rom" yaml:"chargen_rom" toml:"chargen_rom"`
	VerboseLevel int           `json:"verbose_level" yaml:"verbose_level" toml:"verbose_level"`
}

// Console holds the display/theme options from the [Console] section.
// The border glyphs are never read back from the file; they are either the
// box-drawing defaults or, when ASCII mode is on, plain ASCII equivalents.
type Console struct {
	ANSI bool `json:"ansi" yaml:"ansi" toml:"ansi"`

	TopLeft       string `json:"top_left" yaml:"top_left" toml:"top_left"`
	TopRight      string `json:"top_right" yaml:"top_right" toml:"top_right"`
	BottomLeft    string `json:"bottom_left" yaml:"bottom_left" toml:"bottom_left"`
	BottomRight   string `json:"bottom_right" yaml:"bottom_right" toml:"bottom_right"`
	Vertical      string `json:"vertical" yaml:"vertical" toml:"vertical"`
	Horizontal    string `json:"horizontal" yaml:"horizontal" toml:"horizontal"`
	JunctionLeft  string `json:"junction_left" yaml:"junction_left" toml:"junction_left"`
	JunctionRight string `json:"junction_right" yaml:"junction_right" toml:"junction_right"`

	Decorations Color `json:"color_decorations" yaml:"color_decorations" toml:"color_decorations"`
	Title       Color `json:"color_title" yaml:"color_title" toml:"color_title"`
	LabelCore   Color `json:"color_label_core" yaml:"color_label_core" toml:"color_label_core"`
	TextCore    Color `json:"color_text_core" yaml:"color_text_core" toml:"color_text_core"`
	LabelExtra  Color `json:"color_label_extra" yaml:"color_label_extra" toml:"color_label_extra"`
	TextExtra   Color `json:"color_text_extra" yaml:"color_text_extra" toml:"color_text_extra"`
	Notes       Color `json:"color_notes" yaml:"color_notes" toml:"color_notes"`
	ControlOn   Color `json:"color_control_on" yaml:"color_control_on" toml:"color_control_on"`
	ControlOff  Color `json:"color_control_off" yaml:"color_control_off" toml:"color_control_off"`
}

// Audio holds the output options from the [Audio] section.
type Audio struct {
	Frequency    int `json:"frequency" yaml:"frequency" toml:"frequency"`
	Channels     int `json:"channels" yaml:"channels" toml:"channels"`
	Precision    int `json:"bits_per_sample" yaml:"bits_per_sample" toml:"bits_per_sample"`
	BufferLength int `json:"buffer_length" yaml:"buffer_length" toml:"buffer_length"`
}

// Emulation holds the engine options from the [Emulation] section.
type Emulation struct {
	Engine string `json:"engine" yaml:"engine" toml:"engine"`

	Model       C64Model `json:"c64_model" yaml:"c64_model" toml:"c64_model"`
	ModelForced bool     `json:"force_c64_model" yaml:"force_c64_model" toml:"force_c64_model"`
	DigiBoost   bool     `json:"digiboost" yaml:"digiboost" toml:"digiboost"`
	CIA         CIAModel `json:"cia_model" yaml:"cia_model" toml:"cia_model"`
	SID         SIDModel `json:"sid_model" yaml:"sid_model" toml:"sid_model"`
	SIDForced   bool     `json:"force_sid_model" yaml:"force_sid_model" toml:"force_sid_model"`

	Filter          bool    `json:"use_filter" yaml:"use_filter" toml:"use_filter"`
	Bias            float64 `json:"filter_bias" yaml:"filter_bias" toml:"filter_bias"`
	FilterCurve6581 float64 `json:"filter_curve_6581" yaml:"filter_curve_6581" toml:"filter_curve_6581"`
	FilterRange6581 float64 `json:"filter_range_6581" yaml:"filter_range_6581" toml:"filter_range_6581"`
	FilterCurve8580 float64 `json:"filter_curve_8580" yaml:"filter_curve_8580" toml:"filter_curve_8580"`

	CombinedWaveforms CWStrength     `json:"combined_waveforms" yaml:"combined_waveforms" toml:"combined_waveforms"`
	PowerOnDelay      int            `json:"power_on_delay" yaml:"power_on_delay" toml:"power_on_delay"`
	Sampling          SamplingMethod `json:"sampling" yaml:"sampling" toml:"sampling"`
	FastSampling      bool           `json:"resid_fast_sampling" yaml:"resid_fast_sampling" toml:"resid_fast_sampling"`
}

// Settings is the typed record consumed by the player. It is never persisted
// directly; it is projected from and to the document by the Reader.
type Settings struct {
	SIDPlayfp SIDPlayfp `json:"sidplayfp" yaml:"sidplayfp" toml:"sidplayfp"`
	Console   Console   `json:"console" yaml:"console" toml:"console"`
	Audio     Audio     `json:"audio" yaml:"audio" toml:"audio"`
	Emulation Emulation `json:"emulation" yaml:"emulation" toml:"emulation"`
}

// Defaults returns a Settings with every field at its default value.
func Defaults() *Settings {
	s := &Settings{}
	s.Reset()
	return s
}

// Reset restores every field to its default value.
func (s *Settings) Reset() {
	s.SIDPlayfp = SIDPlayfp{
		Version:      1,
		PlayLength:   0, // infinite
		RecordLength: DefaultRecordLength,
	}

	s.Console = Console{
		TopLeft:       "┌",
		TopRight:      "┐",
		BottomLeft:    "└",
		BottomRight:   "┘",
		Vertical:      "│",
		Horizontal:    "─",
		JunctionLeft:  "┤",
		JunctionRight: "├",
		Decorations:   BrightWhite,
		Title:         White,
		LabelCore:     BrightGreen,
		TextCore:      BrightYellow,
		LabelExtra:    BrightMagenta,
		TextExtra:     BrightCyan,
		Notes:         BrightBlue,
		ControlOn:     BrightGreen,
		ControlOff:    BrightRed,
	}

	s.Audio = Audio{
		Frequency:    DefaultSamplingFreq,
		Channels:     0, // auto
		Precision:    16,
		BufferLength: 250,
	}

	s.Emulation = Emulation{
		Model:             PAL,
		CIA:               MOS6526,
		SID:               MOS6581,
		Filter:            true,
		Bias:              0.5,
		FilterCurve6581:   0.5,
		FilterRange6581:   0.5,
		FilterCurve8580:   0.5,
		CombinedWaveforms: Average,
		PowerOnDelay:      -1,
		Sampling:          Resample,
	}
}

// asciiGlyphs overwrites the border glyphs with plain ASCII equivalents.
func (c *Console) asciiGlyphs() {
	c.TopLeft = "+"
	c.TopRight = "+"
	c.BottomLeft = "+"
	c.BottomRight = "+"
	c.Vertical = "|"
	c.Horizontal = "-"
	c.JunctionLeft = "+"
	c.JunctionRight = "+"
}

// KnownKeys maps each section to its recognized keys, in read order.
// Used by doctor checks and by value validation in the CLI.
var KnownKeys = map[string][]string{
	SectionSIDPlayfp: {
		"Version",
		"Songlength Database",
		"Default Play Length",
		"Default Record Length",
		"Kernal Rom",
		"Basic Rom",
		"Chargen Rom",
		"VerboseLevel",
	},
	SectionConsole: {
		"ASCII",
		"Ansi",
		"Color Decorations",
		"Color Title",
		"Color Label Core",
		"Color Text Core",
		"Color Label Extra",
		"Color Text Extra",
		"Color Notes",
		"Color Control On",
		"Color Control Off",
	},
	SectionAudio: {
		"Frequency",
		"Channels",
		"BitsPerSample",
		"BufferLength",
	},
	SectionEmulation: {
		"Engine",
		"C64Model",
		"ForceC64Model",
		"DigiBoost",
		"CiaModel",
		"SidModel",
		"ForceSidModel",
		"UseFilter",
		"FilterBias",
		"FilterCurve6581",
		"FilterRange6581",
		"FilterCurve8580",
		"CombinedWaveforms",
		"PowerOnDelay",
		"Sampling",
		"ResidFastSampling",
	},
}

// SectionNames returns the known section names in population order.
func SectionNames() []string {
	return []string{SectionSIDPlayfp, SectionConsole, SectionAudio, SectionEmulation}
}
