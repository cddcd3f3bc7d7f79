// Package config wires Viper into the CLI: environment overrides for the
// config file location and debug level.
package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/sidconf/internal/paths"
)

// AppName is the application name used for the environment prefix.
const AppName = "sidconf"

// Init initializes Viper with defaults and environment support.
// Call this once at application startup before accessing config values.
//
// Recognized environment variables:
//
//	SIDCONF_CONFIG  path of the sidplayfp.ini file to operate on
//	SIDCONF_DEBUG   1/true for debug logging, 2 for trace
func Init() {
	viper.SetEnvPrefix("SIDCONF")
	viper.AutomaticEnv()

	viper.SetDefault("config", paths.ConfigFile())
}

// File returns the resolved configuration file path: the SIDCONF_CONFIG
// override when set, the XDG default otherwise. An explicit --config flag
// value takes precedence over both via SetFile.
func File() string {
	return viper.GetString("config")
}

// SetFile overrides the configuration file path for this process.
func SetFile(path string) {
	viper.Set("config", path)
}
