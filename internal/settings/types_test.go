package settings

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name   string
		want   Color
		wantOK bool
	}{
		{"black", Black, true},
		{"white", White, true},
		{"bright red", BrightRed, true},
		{"bright white", BrightWhite, true},
		{"BRIGHT RED", 0, false}, // case-sensitive
		{"scarlet", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseColor(tt.name)
		if ok != tt.wantOK {
			t.Errorf("ParseColor(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseColor(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestColor_IndexOrder(t *testing.T) {
	// The palette index order is part of the file format.
	if BrightRed != 9 {
		t.Errorf("bright red index = %d, want 9", BrightRed)
	}
	if BrightWhite != 15 {
		t.Errorf("bright white index = %d, want 15", BrightWhite)
	}
	if len(ColorNames()) != 16 {
		t.Errorf("palette size = %d, want 16", len(ColorNames()))
	}
}

func TestColor_String(t *testing.T) {
	if got := BrightMagenta.String(); got != "bright magenta" {
		t.Errorf("String() = %q", got)
	}
	if got := Color(42).String(); got != "unknown" {
		t.Errorf("out-of-range String() = %q", got)
	}
}

func TestEnum_Strings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{OldNTSC.String(), "OLD_NTSC"},
		{Drean.String(), "DREAN"},
		{MOS8521.String(), "MOS8521"},
		{MOS8580.String(), "MOS8580"},
		{Resample.String(), "RESAMPLE"},
		{Interpolate.String(), "INTERPOLATE"},
		{Average.String(), "AVERAGE"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEnum_MarshalText(t *testing.T) {
	b, err := PAL.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "PAL" {
		t.Errorf("MarshalText() = %q, want PAL", b)
	}

	c, err := BrightCyan.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(c) != "bright cyan" {
		t.Errorf("MarshalText() = %q, want bright cyan", c)
	}
}
