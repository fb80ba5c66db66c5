package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. IGTAX_LOG_LEVEL
const EnvPrefix = "IGTAX"

// Settings are the CLI settings resolved from flags, environment and an
// optional settings file, in that order of precedence.
type Settings struct {
	LogLevel      string `mapstructure:"log_level"`
	LogFormat     string `mapstructure:"log_format"`
	OutputFormat  string `mapstructure:"output_format"`
	OutputDir     string `mapstructure:"output_dir"`
	ConstantsFile string `mapstructure:"constants_file"`
	Debug         bool   `mapstructure:"debug"`
}

// DefaultSettings returns the values used when nothing else is configured
func DefaultSettings() Settings {
	return Settings{
		LogLevel:     "info",
		LogFormat:    "console",
		OutputFormat: "text",
		OutputDir:    ".",
	}
}

// NewViper creates a viper instance with defaults and environment overrides.
// When settingsFile is non-empty it is read as YAML.
func NewViper(settingsFile string) (*viper.Viper, error) {
	v := viper.New()

	d := DefaultSettings()
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("output_format", d.OutputFormat)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("constants_file", d.ConstantsFile)
	v.SetDefault("debug", d.Debug)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading settings file %s: %w", settingsFile, err)
		}
	}
	return v, nil
}

// LoadSettings decodes the resolved settings
func LoadSettings(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	s.LogFormat = strings.ToLower(s.LogFormat)
	s.OutputFormat = strings.ToLower(s.OutputFormat)
	return &s, nil
}
