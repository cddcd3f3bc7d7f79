package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// File and directory names used by sidplayfp-compatible players.
const (
	// AppDirName is the per-application directory under the XDG base dirs.
	AppDirName = "sidplayfp"

	// ConfigFileName is the configuration file name.
	ConfigFileName = "sidplayfp.ini"

	// SonglengthsFileName is the HVSC song length database file name.
	SonglengthsFileName = "Songlengths.txt"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the default permission for newly created directories.
// Matches the historical sidplayfp mkdir mode.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0755) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ExpandUser replaces a leading "~" or "~/" in path with the user's home
// directory. Other-user forms ("~bob/...") and paths without the prefix
// are returned unchanged.
func ExpandUser(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// ConfigDir returns the directory holding the configuration file.
// Returns: <ConfigHome>/sidplayfp/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppDirName)
}

// ConfigFile returns the full path to the configuration file.
// Returns: <ConfigHome>/sidplayfp/sidplayfp.ini
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// SonglengthsFile returns the default song length database path.
// Returns: <DataHome>/sidplayfp/Songlengths.txt
func SonglengthsFile() string {
	return filepath.Join(DataHome(), AppDirName, SonglengthsFileName)
}
