package doctor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/thoreinstein/sidconf/internal/ini"
	"github.com/thoreinstein/sidconf/internal/logging"
	"github.com/thoreinstein/sidconf/internal/paths"
	"github.com/thoreinstein/sidconf/internal/settings"
	"github.com/thoreinstein/sidconf/pkg/fileutil"
)

// ConfigDirCheck validates the directory holding the configuration file.
type ConfigDirCheck struct {
	path string
}

var _ Check = (*ConfigDirCheck)(nil)

// NewConfigDirCheck creates a check for the directory containing path.
func NewConfigDirCheck(path string) *ConfigDirCheck {
	return &ConfigDirCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigDirCheck) Name() string {
	return "config-dir"
}

// Category returns the grouping for this check.
func (c *ConfigDirCheck) Category() string {
	return "filesystem"
}

// Run executes the directory diagnostic check.
func (c *ConfigDirCheck) Run() *CheckResult {
	dir := filepath.Dir(c.path)
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": dir},
	}

	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "config directory does not exist (created on first run)"
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat config directory: %v", err)
		return result
	}

	if !info.IsDir() {
		result.Status = SeverityError
		result.Message = "expected directory but found file"
		return result
	}

	if !isDirWritable(dir) {
		result.Status = SeverityWarning
		result.Message = "config directory is not writable"
		result.Details["permissions"] = formatPermissions(info.Mode())
		result.FixHint = "chmod u+w " + dir
		return result
	}

	// World-writable directories let any local user tamper with the file.
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o002 != 0 {
		result.Status = SeverityWarning
		result.Message = "config directory is world-writable"
		result.Details["permissions"] = formatPermissions(info.Mode())
		result.FixHint = "chmod 755 " + dir
		return result
	}

	result.Status = SeverityPass
	result.Message = "config directory exists and is writable"
	return result
}

// isDirWritable tests if a directory is writable by creating a temp file.
func isDirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".sidconf-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	f.Close()
	os.Remove(name)
	return true
}

// formatPermissions returns a human-readable permission string (e.g., "0644").
func formatPermissions(mode os.FileMode) string {
	return fmt.Sprintf("%04o", mode.Perm())
}

// ConfigFileCheck validates the configuration file itself: existence,
// readability, size and permissions.
type ConfigFileCheck struct {
	path string
}

var _ Check = (*ConfigFileCheck)(nil)

// NewConfigFileCheck creates a check for the configuration file at path.
func NewConfigFileCheck(path string) *ConfigFileCheck {
	return &ConfigFileCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigFileCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigFileCheck) Category() string {
	return "filesystem"
}

// Run executes the file diagnostic check.
func (c *ConfigFileCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	info, err := os.Stat(c.path)
	if os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "config file does not exist (created on first run)"
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat config file: %v", err)
		return result
	}

	if !info.Mode().IsRegular() {
		result.Status = SeverityError
		result.Message = "expected regular file but found " + info.Mode().Type().String()
		return result
	}

	if info.Size() > fileutil.MaxFileSize {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("config file is %d bytes, exceeding the %d byte limit", info.Size(), fileutil.MaxFileSize)
		return result
	}

	f, err := os.Open(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = "config file is not readable"
		result.Details["permissions"] = formatPermissions(info.Mode())
		result.FixHint = "chmod 644 " + c.path
		return result
	}
	f.Close()

	if runtime.GOOS != "windows" && info.Mode().Perm()&0o002 != 0 {
		result.Status = SeverityWarning
		result.Message = "config file is world-writable"
		result.Details["permissions"] = formatPermissions(info.Mode())
		result.FixHint = "chmod 644 " + c.path
		return result
	}

	result.Status = SeverityPass
	result.Message = "config file is a readable regular file"
	return result
}

// SyntaxCheck scans the raw file for lines the parser would drop: section
// headers without a closing bracket, key lines without '=', and content
// before the first section.
type SyntaxCheck struct {
	path string
}

var _ Check = (*SyntaxCheck)(nil)

// NewSyntaxCheck creates a syntax check for the file at path.
func NewSyntaxCheck(path string) *SyntaxCheck {
	return &SyntaxCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *SyntaxCheck) Name() string {
	return "syntax"
}

// Category returns the grouping for this check.
func (c *SyntaxCheck) Category() string {
	return "config"
}

// droppedLine records a line the parser ignores, with its 1-based number.
type droppedLine struct {
	Line    int    `json:"line"`
	Text    string `json:"text"`
	Problem string `json:"problem"`
}

// Run executes the syntax diagnostic check.
func (c *SyntaxCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = SeverityInfo
			result.Message = "config file does not exist"
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		return result
	}

	dropped := scanDropped(data)

	doc, err := ini.Load(c.path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		return result
	}
	result.Details["sections"] = len(doc.Sections())

	if len(dropped) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("file parses cleanly into %d section(s)", len(doc.Sections()))
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d line(s) will be ignored when the file is parsed", len(dropped))
	result.Details["dropped"] = dropped
	result.FixHint = "fix or remove the listed lines; they are lost on the next rewrite"
	return result
}

// scanDropped re-runs the parser's classification rules and collects every
// line that does not survive a load/save cycle. Blank lines are excluded;
// dropping those is normal.
func scanDropped(data []byte) []droppedLine {
	var dropped []droppedLine
	sc := bufio.NewScanner(bytes.NewReader(data))

	inSection := false
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}

		switch line[0] {
		case ';', '#':
			if !inSection {
				dropped = append(dropped, droppedLine{lineNo, line, "comment before first section"})
			}
		case '[':
			if strings.IndexByte(line, ']') < 0 {
				dropped = append(dropped, droppedLine{lineNo, line, "section header without closing bracket"})
			} else {
				inSection = true
			}
		default:
			switch {
			case !inSection:
				dropped = append(dropped, droppedLine{lineNo, line, "content before first section"})
			case strings.IndexByte(line, '=') < 0:
				dropped = append(dropped, droppedLine{lineNo, line, "key line without '='"})
			}
		}
	}

	return dropped
}

// SettingsCheck dry-runs the typed reader over the file and reports every
// value that fails coercion, plus keys and sections the reader never looks
// at. Nothing is written back.
type SettingsCheck struct {
	path string
}

var _ Check = (*SettingsCheck)(nil)

// NewSettingsCheck creates a settings check for the file at path.
func NewSettingsCheck(path string) *SettingsCheck {
	return &SettingsCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *SettingsCheck) Name() string {
	return "settings"
}

// Category returns the grouping for this check.
func (c *SettingsCheck) Category() string {
	return "config"
}

// Run executes the settings diagnostic check.
func (c *SettingsCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	doc, err := ini.Load(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = SeverityInfo
			result.Message = "config file does not exist"
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		return result
	}

	unknown := unknownEntries(doc)
	if len(unknown) > 0 {
		result.Details["unknown"] = unknown
	}

	rec := &recordingHandler{}
	s := settings.Defaults()
	settings.NewReader(doc, rec.logger()).Read(s)

	if len(rec.messages) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d value(s) failed coercion and keep their defaults", len(rec.messages))
		result.Details["coercion"] = rec.messages
		result.FixHint = "correct the listed values; sidconf get <section> <key> shows the raw text"
		return result
	}

	if len(unknown) > 0 {
		result.Status = SeverityInfo
		result.Message = fmt.Sprintf("all values coerce; %d key(s) are not read by the player", len(unknown))
		return result
	}

	result.Status = SeverityPass
	result.Message = "all values coerce to their typed fields"
	return result
}

// unknownEntries lists "[Section] Key" strings for keys present in the file
// that the typed reader never reads. Passthrough comments are skipped.
func unknownEntries(doc *ini.Document) []string {
	known := make(map[string]map[string]bool, len(settings.KnownKeys))
	for name, keys := range settings.KnownKeys {
		m := make(map[string]bool, len(keys))
		for _, k := range keys {
			m[k] = true
		}
		known[name] = m
	}

	var unknown []string
	for _, sec := range doc.Sections() {
		keys := known[sec.Name()]
		for _, e := range sec.Entries() {
			if e.IsComment() {
				continue
			}
			if keys == nil || !keys[e.Key] {
				unknown = append(unknown, fmt.Sprintf("[%s] %s", sec.Name(), e.Key))
			}
		}
	}
	return unknown
}

// ResourceCheck validates the external files the configuration points at:
// ROM images and the songlength database. A leading "~" in a configured
// path is expanded to the user's home directory before checking.
type ResourceCheck struct {
	path string
}

var _ Check = (*ResourceCheck)(nil)

// NewResourceCheck creates a resource check for the file at path.
func NewResourceCheck(path string) *ResourceCheck {
	return &ResourceCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ResourceCheck) Name() string {
	return "resources"
}

// Category returns the grouping for this check.
func (c *ResourceCheck) Category() string {
	return "resources"
}

// Run executes the resource diagnostic check.
func (c *ResourceCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}

	doc, err := ini.Load(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = SeverityInfo
			result.Message = "config file does not exist"
			return result
		}
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read config file: %v", err)
		return result
	}

	s := settings.Defaults()
	settings.NewReader(doc, logging.NewDiscard()).Read(s)

	var missing []string
	for name, p := range map[string]string{
		"Kernal Rom":          s.SIDPlayfp.KernalROM,
		"Basic Rom":           s.SIDPlayfp.BasicROM,
		"Chargen Rom":         s.SIDPlayfp.ChargenROM,
		"Songlength Database": s.SIDPlayfp.Database,
	} {
		if p == "" {
			continue
		}
		result.Details[name] = p
		expanded, err := paths.ExpandUser(p)
		if err != nil {
			expanded = p
		}
		if !isReadableFile(expanded) {
			missing = append(missing, fmt.Sprintf("%s: %s", name, p))
		}
	}

	if len(missing) > 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%d configured file(s) are missing or unreadable", len(missing))
		result.Details["missing"] = missing
		return result
	}

	if s.SIDPlayfp.Database == "" {
		result.Status = SeverityInfo
		result.Message = "no songlength database configured; song durations will be unknown"
		return result
	}

	result.Status = SeverityPass
	result.Message = "all configured resource files are readable"
	return result
}

// isReadableFile reports whether path is a readable regular file.
func isReadableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
