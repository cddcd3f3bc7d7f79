package doctor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sidplayfp.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestConfigDirCheck(t *testing.T) {
	t.Run("missing directory", func(t *testing.T) {
		res := NewConfigDirCheck("/nonexistent/dir/sidplayfp.ini").Run()
		assert.Equal(t, SeverityInfo, res.Status)
	})

	t.Run("writable directory", func(t *testing.T) {
		res := NewConfigDirCheck(writeConfig(t, "")).Run()
		assert.Equal(t, SeverityPass, res.Status)
	})

	t.Run("file in place of directory", func(t *testing.T) {
		path := writeConfig(t, "")
		res := NewConfigDirCheck(filepath.Join(path, "sidplayfp.ini")).Run()
		assert.Equal(t, SeverityError, res.Status)
	})
}

func TestConfigFileCheck(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		res := NewConfigFileCheck(filepath.Join(t.TempDir(), "sidplayfp.ini")).Run()
		assert.Equal(t, SeverityInfo, res.Status)
	})

	t.Run("readable file", func(t *testing.T) {
		res := NewConfigFileCheck(writeConfig(t, "[SIDPlayfp]\n")).Run()
		assert.Equal(t, SeverityPass, res.Status)
	})

	t.Run("world-writable file", func(t *testing.T) {
		path := writeConfig(t, "[SIDPlayfp]\n")
		require.NoError(t, os.Chmod(path, 0o666))
		res := NewConfigFileCheck(path).Run()
		assert.Equal(t, SeverityWarning, res.Status)
		assert.Contains(t, res.FixHint, "chmod 644")
	})

	t.Run("directory in place of file", func(t *testing.T) {
		res := NewConfigFileCheck(t.TempDir()).Run()
		assert.Equal(t, SeverityError, res.Status)
	})
}

func TestSyntaxCheck(t *testing.T) {
	t.Run("clean file", func(t *testing.T) {
		path := writeConfig(t, "[SIDPlayfp]\nVersion = 1\n\n[Audio]\nFrequency = 48000\n")
		res := NewSyntaxCheck(path).Run()
		assert.Equal(t, SeverityPass, res.Status)
		assert.Equal(t, 2, res.Details["sections"])
	})

	t.Run("missing file", func(t *testing.T) {
		res := NewSyntaxCheck(filepath.Join(t.TempDir(), "sidplayfp.ini")).Run()
		assert.Equal(t, SeverityInfo, res.Status)
	})

	t.Run("lines the parser drops", func(t *testing.T) {
		path := writeConfig(t, `stray before any section
; early comment
[Audio
[Audio]
Frequency 48000
Frequency = 48000
`)
		res := NewSyntaxCheck(path).Run()
		assert.Equal(t, SeverityWarning, res.Status)

		dropped, ok := res.Details["dropped"].([]droppedLine)
		require.True(t, ok)
		require.Len(t, dropped, 4)
		assert.Equal(t, 1, dropped[0].Line)
		assert.Equal(t, "content before first section", dropped[0].Problem)
		assert.Equal(t, "comment before first section", dropped[1].Problem)
		assert.Equal(t, "section header without closing bracket", dropped[2].Problem)
		assert.Equal(t, "key line without '='", dropped[3].Problem)
	})

	t.Run("blank lines are not reported", func(t *testing.T) {
		path := writeConfig(t, "[Audio]\n\n\nFrequency = 48000\n")
		res := NewSyntaxCheck(path).Run()
		assert.Equal(t, SeverityPass, res.Status)
	})
}

func TestSettingsCheck(t *testing.T) {
	t.Run("clean values", func(t *testing.T) {
		path := writeConfig(t, "[Audio]\nFrequency = 44100\n")
		res := NewSettingsCheck(path).Run()
		assert.Equal(t, SeverityPass, res.Status)
	})

	t.Run("coercion failures", func(t *testing.T) {
		path := writeConfig(t, "[Audio]\nFrequency = fast\nBufferLength = 1.5\n")
		res := NewSettingsCheck(path).Run()
		assert.Equal(t, SeverityWarning, res.Status)

		msgs, ok := res.Details["coercion"].([]string)
		require.True(t, ok)
		assert.Len(t, msgs, 2)
		assert.Contains(t, msgs[0], "Frequency")
	})

	t.Run("unknown keys are informational", func(t *testing.T) {
		path := writeConfig(t, "[Audio]\nLoudness = 11\n\n[MyStuff]\nFoo = bar\n")
		res := NewSettingsCheck(path).Run()
		assert.Equal(t, SeverityInfo, res.Status)

		unknown, ok := res.Details["unknown"].([]string)
		require.True(t, ok)
		assert.Equal(t, []string{"[Audio] Loudness", "[MyStuff] Foo"}, unknown)
	})

	t.Run("nothing is written back", func(t *testing.T) {
		content := "[Audio]\nFrequency = fast\n"
		path := writeConfig(t, content)
		NewSettingsCheck(path).Run()

		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(after))
	})
}

func TestResourceCheck(t *testing.T) {
	// Keep the songlength fallback from finding a real database on the
	// machine running the tests.
	t.Cleanup(func() { xdg.Reload() })
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	xdg.Reload()

	t.Run("no resources configured", func(t *testing.T) {
		path := writeConfig(t, "[SIDPlayfp]\n")
		res := NewResourceCheck(path).Run()
		assert.Equal(t, SeverityInfo, res.Status)
	})

	t.Run("missing rom", func(t *testing.T) {
		path := writeConfig(t, "[SIDPlayfp]\nKernal Rom = /nonexistent/kernal.rom\n")
		res := NewResourceCheck(path).Run()
		assert.Equal(t, SeverityWarning, res.Status)

		missing, ok := res.Details["missing"].([]string)
		require.True(t, ok)
		assert.Contains(t, missing[0], "/nonexistent/kernal.rom")
	})

	t.Run("all resources readable", func(t *testing.T) {
		db := filepath.Join(t.TempDir(), "Songlengths.txt")
		require.NoError(t, os.WriteFile(db, []byte("[Database]\n"), 0644))

		path := writeConfig(t, "[SIDPlayfp]\nSonglength Database = "+db+"\n")
		res := NewResourceCheck(path).Run()
		assert.Equal(t, SeverityPass, res.Status)
	})

	t.Run("tilde path expands to home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		require.NoError(t, os.WriteFile(filepath.Join(home, "Songlengths.txt"), []byte("[Database]\n"), 0644))

		path := writeConfig(t, "[SIDPlayfp]\nSonglength Database = ~/Songlengths.txt\n")
		res := NewResourceCheck(path).Run()
		assert.Equal(t, SeverityPass, res.Status)
	})
}
