package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the CLI.
const (
	FormatJSON    = "json"
	FormatContent = "content"
)

// Global configuration structure.
type Global struct {
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format"` // console|json

	GeneratePlots bool   `mapstructure:"generate_plots" yaml:"generate_plots"`
	OutputFormat  string `mapstructure:"output_format" yaml:"output_format"` // json|content
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults. Command-line flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SHEETSTAT")
	v.AutomaticEnv()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("generate_plots", true)
	v.SetDefault("output_format", FormatJSON)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".sheetstat"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// optional read
		_ = v.ReadInConfig()
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Validate reports the first setting that cannot be used.
func (c *Global) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unsupported value %q (want console or json)", c.LogFormat)
	}
	switch c.OutputFormat {
	case FormatJSON, FormatContent:
	default:
		return fmt.Errorf("output_format: unsupported value %q (want %s or %s)", c.OutputFormat, FormatJSON, FormatContent)
	}
	return nil
}

// YAML renders the effective configuration, used in debug logs.
func (c *Global) YAML() (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return string(b), nil
}
