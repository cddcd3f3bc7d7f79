package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/sidconf/internal/paths"
)

func TestFile_DefaultsToXDGPath(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()

	assert.Equal(t, paths.ConfigFile(), File())
}

func TestFile_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SIDCONF_CONFIG", "/tmp/other.ini")
	Init()

	assert.Equal(t, "/tmp/other.ini", File())
}

func TestSetFile_WinsOverEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("SIDCONF_CONFIG", "/tmp/other.ini")
	Init()

	SetFile("/tmp/flag.ini")
	assert.Equal(t, "/tmp/flag.ini", File())
}
