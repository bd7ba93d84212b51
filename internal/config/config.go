// Package config defines the data structures related to configuration and
// includes functions for loading, defaulting and checking the config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/unit-economics/internal/economics"
	"github.com/iwvelando/unit-economics/pkg/constants"
	"github.com/iwvelando/unit-economics/pkg/validation"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

// Configuration holds all configuration for unit-economics: the business
// model itself plus how to log, print and persist it.
type Configuration struct {
	economics.Model `yaml:",inline" mapstructure:",squash"`
	Logging         LoggingConfig `yaml:"logging,omitempty" json:"logging" mapstructure:"logging"`
	Output          OutputConfig  `yaml:"output,omitempty" json:"output" mapstructure:"output"`
	Storage         StorageConfig `yaml:"storage,omitempty" json:"storage" mapstructure:"storage"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty" json:"level" mapstructure:"level"`                // debug, info, warn, error
	Format     string `yaml:"format,omitempty" json:"format" mapstructure:"format"`             // json, console
	OutputFile string `yaml:"outputFile,omitempty" json:"outputFile" mapstructure:"outputFile"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty" json:"format" mapstructure:"format"` // pretty, csv, json
}

// StorageConfig selects and configures the snapshot store.
type StorageConfig struct {
	Backend string      `yaml:"backend,omitempty" json:"backend" mapstructure:"backend"` // file, sqlite, redis
	Path    string      `yaml:"path,omitempty" json:"path" mapstructure:"path"`          // file or database path
	Name    string      `yaml:"name,omitempty" json:"name" mapstructure:"name"`          // snapshot name
	Redis   RedisConfig `yaml:"redis,omitempty" json:"redis" mapstructure:"redis"`
}

// RedisConfig holds the connection options of the Redis store.
type RedisConfig struct {
	Address   string `yaml:"address,omitempty" json:"address" mapstructure:"address"`
	Password  string `yaml:"password,omitempty" json:"-" mapstructure:"password"`
	DB        int    `yaml:"db,omitempty" json:"db" mapstructure:"db"`
	KeyPrefix string `yaml:"keyPrefix,omitempty" json:"keyPrefix" mapstructure:"keyPrefix"`
}

// Top-level keys of the model sections. viper reports them lowercased.
var modelSections = []string{"wholesale", "custompackages", "retail", "fixedcosts"}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")
	v.AutomaticEnv()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config, %w", err)
	}

	return decode(v)
}

// Default returns the reference model with default logging, output and
// storage settings.
func Default() *Configuration {
	configuration := &Configuration{Model: economics.DefaultModel()}
	configuration.applyDefaults()
	return configuration
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration, viper.DecodeHook(validation.DecodeHook())); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	defaults := economics.DefaultModel()
	for _, section := range modelSections {
		if v.IsSet(section) {
			continue
		}
		switch section {
		case "wholesale":
			configuration.Wholesale = defaults.Wholesale
		case "custompackages":
			configuration.Custom = defaults.Custom
		case "retail":
			configuration.Retail = defaults.Retail
		case "fixedcosts":
			configuration.FixedCosts = defaults.FixedCosts
		}
	}

	if !v.IsSet("custompackages.salesplan.buckets") {
		configuration.Custom.SalesPlan.Buckets = defaults.Custom.SalesPlan.Buckets
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (c *Configuration) applyDefaults() {
	if method, ok := economics.ParseDecorationMethod(string(c.Custom.Decoration)); ok {
		c.Custom.Decoration = method
	}
	c.Model.ApplyDefaults()

	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	c.Storage = c.Storage.WithDefaults()
}

// WithDefaults returns a copy of the storage config with every empty field
// set to the default of its backend.
func (s StorageConfig) WithDefaults() StorageConfig {
	if s.Backend == "" {
		s.Backend = constants.StorageBackendFile
	}
	if s.Name == "" {
		s.Name = constants.DefaultSnapshotName
	}
	if s.Path == "" {
		switch s.Backend {
		case constants.StorageBackendFile:
			s.Path = constants.DefaultSnapshotFile
		case constants.StorageBackendSQLite:
			s.Path = constants.DefaultSQLitePath
		}
	}
	if s.Redis.Address == "" {
		s.Redis.Address = constants.DefaultRedisAddress
	}
	if s.Redis.KeyPrefix == "" {
		s.Redis.KeyPrefix = constants.DefaultRedisKeyPrefix
	}
	return s
}

// Validate reports every setting that would make the program unable to run.
// The model itself is never rejected.
func (c *Configuration) Validate() error {
	var err error
	if e := validation.ValidateOutputFormat(c.Output.Format); e != nil {
		err = multierr.Append(err, fmt.Errorf("output.format: %w", e))
	}
	if e := validation.ValidateStorageBackend(c.Storage.Backend); e != nil {
		err = multierr.Append(err, fmt.Errorf("storage.backend: %w", e))
	}
	if e := validation.ValidateLogLevel(c.Logging.Level); e != nil {
		err = multierr.Append(err, fmt.Errorf("logging.level: %w", e))
	}
	if e := validation.ValidateLogFormat(c.Logging.Format); e != nil {
		err = multierr.Append(err, fmt.Errorf("logging.format: %w", e))
	}
	return err
}
