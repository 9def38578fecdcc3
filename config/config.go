// Package config loads docgen-mcp configuration via Viper.
//
// Precedence: defaults < docgen.toml (working directory or ~/.docgen) <
// DOCGEN_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/docfoundry/docgen-mcp/errors"
)

// Config is the root configuration for docgen-mcp
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Typeset TypesetConfig `mapstructure:"typeset"`
	Output  OutputConfig  `mapstructure:"output"`
}

// ServerConfig configures the HTTP transport
type ServerConfig struct {
	Port    int    `mapstructure:"port"`
	BaseURL string `mapstructure:"base_url"` // base for download links; derived from port when empty
}

// StorageConfig configures the ephemeral artifact store
type StorageConfig struct {
	TTLSeconds           int `mapstructure:"ttl_seconds"`
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds"`
}

// TypesetConfig configures the Typst compilation adapter
type TypesetConfig struct {
	Binary                string `mapstructure:"binary"`    // typst executable name or path
	FontDir               string `mapstructure:"font_dir"`  // extra fonts; empty = builtin fonts only
	CompileTimeoutSeconds int    `mapstructure:"compile_timeout_seconds"`
}

// OutputConfig configures local (stdio-mode) delivery
type OutputConfig struct {
	Dir string `mapstructure:"dir"` // directory for generated files in stdio mode
}

// TTL returns the artifact time-to-live as a duration
func (c StorageConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// SweepInterval returns the sweep cadence as a duration
func (c StorageConfig) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

// CompileTimeout returns the per-compile deadline as a duration
func (c TypesetConfig) CompileTimeout() time.Duration {
	return time.Duration(c.CompileTimeoutSeconds) * time.Second
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.base_url", "")

	v.SetDefault("storage.ttl_seconds", 3600)           // artifacts live 1 hour
	v.SetDefault("storage.sweep_interval_seconds", 300) // sweep every 5 minutes

	v.SetDefault("typeset.binary", "typst")
	v.SetDefault("typeset.font_dir", "")
	v.SetDefault("typeset.compile_timeout_seconds", 30)

	v.SetDefault("output.dir", ".")
}

// Load reads the configuration from defaults, config file, and environment
func Load() (*Config, error) {
	return LoadWithViper(newViper())
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}
	return LoadWithViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix("DOCGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	v.SetConfigName("docgen")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".docgen"))
	}
	// Missing config file is fine, defaults and env vars apply
	_ = v.ReadInConfig()

	return v
}
