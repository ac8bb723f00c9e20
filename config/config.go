// Package config provides configuration types and defaults for the lvhom CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvhom/filtration"
	"github.com/katalvlaran/lvhom/matrix"
)

// EnvPrefix prefixes environment overrides: LVHOM_FACES=lenient.
const EnvPrefix = "LVHOM"

// Defaults mirror the historical command line: intervals land in
// intervals/interval.txt and logs under log/.
const (
	DefaultOutput = "intervals/interval.txt"
	DefaultLogDir = "log/"
	DefaultFormat = "text"
	DefaultFaces  = "strict"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all configuration options for lvhom compute.
type Config struct {
	Output  string `mapstructure:"output"`  // interval file
	LogDir  string `mapstructure:"log"`     // log file prefix (directory or path prefix)
	Format  string `mapstructure:"format"`  // text | yaml
	Faces   string `mapstructure:"faces"`   // strict | lenient
	Verbose bool   `mapstructure:"verbose"` // debug-level logging
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		Output: DefaultOutput,
		LogDir: DefaultLogDir,
		Format: DefaultFormat,
		Faces:  DefaultFaces,
	}
}

// Load resolves the configuration. Precedence, highest first: flags that
// were set explicitly, LVHOM_* environment variables, the config file at
// path (skipped when empty), Defaults.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	def := Defaults()
	v.SetDefault("output", def.Output)
	v.SetDefault("log", def.LogDir)
	v.SetDefault("format", def.Format)
	v.SetDefault("faces", def.Faces)
	v.SetDefault("verbose", def.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if flags != nil {
		for _, key := range []string{"output", "log", "format", "faces", "verbose"} {
			if f := flags.Lookup(key); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind --%s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := c.FacePolicy(); err != nil {
		return fmt.Errorf("%w: faces: %v", ErrInvalidConfig, err)
	}
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("%w: format: %v", ErrInvalidConfig, err)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is empty", ErrInvalidConfig)
	}

	return nil
}

// FacePolicy parses Faces.
func (c Config) FacePolicy() (matrix.FacePolicy, error) {
	return matrix.ParsePolicy(c.Faces)
}

// OutputFormat parses Format.
func (c Config) OutputFormat() (filtration.Format, error) {
	return filtration.ParseFormat(c.Format)
}
