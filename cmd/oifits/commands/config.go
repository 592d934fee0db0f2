package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds CLI defaults loaded from oifits.toml.
type Config struct {
	Quiet     bool   `mapstructure:"quiet"`
	Verbosity int    `mapstructure:"verbosity"`
	OutputDir string `mapstructure:"output_dir"`
}

// LoadConfig reads oifits.toml from the working directory or
// ~/.config/oifits/, falling back to defaults when no file exists.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("oifits")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "oifits"))
	}
	v.SetEnvPrefix("OIFITS")
	v.AutomaticEnv()

	v.SetDefault("quiet", false)
	v.SetDefault("verbosity", 0)
	v.SetDefault("output_dir", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
