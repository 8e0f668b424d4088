// Package config loads client settings from a .nous file or NOUS_* env vars.
package config

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings every command needs.
type Config struct {
	// Server is the NOUS backend base URL.
	Server string
	// Country is the fixed default used for crisis resource lookups.
	Country string
	// Path is the local draft store location.
	Path string
}

// Load reads configuration with viper. Missing config files are fine; the
// defaults below apply.
func Load() (*Config, error) {
	viper.SetDefault("server", "http://127.0.0.1:5000")
	viper.SetDefault("country", "US")
	viper.SetDefault("path", "~/.nous.db")
	viper.SetConfigName(".nous") // .yaml is implicit
	viper.SetEnvPrefix("NOUS")
	viper.AutomaticEnv()

	if override := os.Getenv("NOUS_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		path = viper.GetString("path")
	}

	return &Config{
		Server:  viper.GetString("server"),
		Country: viper.GetString("country"),
		Path:    path,
	}, nil
}
