// Package paths provides cross-platform path resolution for the sidplayfp
// configuration and data files.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config, ~/.local/share).
//
// # File layout
//
//	| File                 | Location                                      |
//	|----------------------|-----------------------------------------------|
//	| sidplayfp.ini        | <ConfigHome>/sidplayfp/sidplayfp.ini          |
//	| Songlengths.txt      | <DataHome>/sidplayfp/Songlengths.txt          |
//
// The core store (internal/ini) consumes a single resolved file path; it
// never performs platform-specific discovery itself. Callers use
// [ConfigFile] plus [EnsureDir] before opening or creating the file.
package paths
