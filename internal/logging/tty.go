package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether w writes to a terminal. Anything exposing an Fd()
// method, os.File included, is probed; other writers never count as one.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI escapes are safe to write to w.
// Color is off for non-terminals, when NO_COLOR is set
// (https://no-color.org), and when TERM=dumb.
func SupportsColor(w io.Writer) bool {
	return supportsColor(IsTTY(w))
}

func supportsColor(isTTY bool) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}
