package server

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/unit-economics/internal/config"
	"github.com/iwvelando/unit-economics/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address           string               `yaml:"address"`
	MaxUploadSize     string               `yaml:"maxUploadSize"`
	RequestsPerSecond float64              `yaml:"requestsPerSecond"`
	Burst             int                  `yaml:"burst"`
	Logging           config.LoggingConfig `yaml:"logging"`
	Storage           config.StorageConfig `yaml:"storage"`
	uploadSizeBytes   int64
}

// LoadConfig loads the server configuration from YAML. A missing file or an
// empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read server config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes returns the request body limit in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

// normalize replaces unset or non-positive settings with their defaults and
// resolves the upload limit.
func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = constants.DefaultRequestsPerSecond
	}
	if c.Burst <= 0 {
		c.Burst = constants.DefaultRequestBurst
	}
	c.Storage = c.Storage.WithDefaults()

	size, err := ParseSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxUploadSizeBytes
	}
	c.uploadSizeBytes = size
	c.MaxUploadSize = strconv.FormatInt(size, 10)
	return nil
}

// Longer suffixes come first so "MB" is not read as "B".
var sizeUnits = []struct {
	suffix string
	bytes  int64
}{
	{"GB", 1 << 30},
	{"G", 1 << 30},
	{"MB", 1 << 20},
	{"M", 1 << 20},
	{"KB", 1 << 10},
	{"K", 1 << 10},
	{"B", 1},
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into
// bytes. An empty string is the default limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	multiplier := int64(1)
	for _, unit := range sizeUnits {
		if strings.HasSuffix(s, unit.suffix) {
			s = strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
			multiplier = unit.bytes
			break
		}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", value, err)
	}
	if n < 0 || n > math.MaxInt64/multiplier {
		return 0, fmt.Errorf("size out of range: %s", value)
	}
	return n * multiplier, nil
}
