// filepath: internal/config/config.go
package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"solarapi/internal/shared"

	"github.com/BurntSushi/toml"
)

// Default values applied when neither the config file, the environment nor a flag sets them.
const (
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 5000
	DefaultSummaryPath    = "EdgeAI/summary.json"
	DefaultSummaryMaxSize = "8MB"
	DefaultDatabasePath   = "solarapi.db"
	DefaultRetention      = "90d"
	DefaultHkInterval     = "1h"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"
)

// Config holds the application's configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Summary  SummaryConfig  `toml:"summary"`
	Database DatabaseConfig `toml:"database"`
	Logging  LoggingConfig  `toml:"logging"`

	SummaryMaxSizeBytes int64         `toml:"-"` // Runtime computed value
	SummaryAbsPath      string        `toml:"-"` // Runtime computed value
	Retention           time.Duration `toml:"-"` // Runtime computed value, zero disables pruning
	HkInterval          time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// SummaryConfig describes where the edge summary document lives.
type SummaryConfig struct {
	Path    string `toml:"path"`
	MaxSize string `toml:"max_size"` // e.g. "8MB", "512KB"
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path       string `toml:"path"`
	Retention  string `toml:"retention"`   // e.g. "90d", "0" keeps everything
	HkInterval string `toml:"hk_interval"` // e.g. "1h"
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	Format       string `toml:"format"` // "json" or "text"
	AuditEnabled bool   `toml:"audit_enabled"`
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the configuration to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrorCreateFile, path, err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", shared.ErrorEncodeFile, path, err)
	}
	return nil
}

// ApplyDefaults fills every empty field with its default value.
func (c *Config) ApplyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Summary.Path == "" {
		c.Summary.Path = DefaultSummaryPath
	}
	if c.Summary.MaxSize == "" {
		c.Summary.MaxSize = DefaultSummaryMaxSize
	}
	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath
	}
	if c.Database.Retention == "" {
		c.Database.Retention = DefaultRetention
	}
	if c.Database.HkInterval == "" {
		c.Database.HkInterval = DefaultHkInterval
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// ParseAndValidate processes configuration strings into runtime values.
// The summary file is not required to exist; its absence is reported per request.
func (c *Config) ParseAndValidate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Summary.MaxSize == "" {
		c.Summary.MaxSize = DefaultSummaryMaxSize
	}
	sizeBytes, err := parseSize(c.Summary.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid max_size: %w", err)
	}
	if sizeBytes <= 0 {
		return fmt.Errorf("invalid max_size: must be greater than zero")
	}
	c.SummaryMaxSizeBytes = sizeBytes

	if strings.TrimSpace(c.Summary.Path) == "" {
		return fmt.Errorf("summary path must not be empty")
	}
	absPath, err := filepath.Abs(c.Summary.Path)
	if err != nil {
		return fmt.Errorf("invalid summary path %q: %w", c.Summary.Path, err)
	}
	c.SummaryAbsPath = absPath

	if c.Database.Retention == "" {
		c.Database.Retention = DefaultRetention
	}
	c.Retention, err = ParseDuration(c.Database.Retention)
	if err != nil {
		return fmt.Errorf("invalid retention: %w", err)
	}

	if c.Database.HkInterval == "" {
		c.Database.HkInterval = DefaultHkInterval
	}
	c.HkInterval, err = ParseDuration(c.Database.HkInterval)
	if err != nil {
		return fmt.Errorf("invalid hk_interval: %w", err)
	}
	if c.HkInterval < time.Minute {
		return fmt.Errorf("invalid hk_interval: must be at least 1m")
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ParseDuration parses a duration that may use a day suffix (e.g. "90d")
// in addition to the units accepted by time.ParseDuration. "0" is zero.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "0" {
		return 0, nil
	}
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || days < 0 {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}
	return d, nil
}

// parseSize parses a size string (e.g., "100G", "500MB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	re := regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(sizeStr))

	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	unit := ""
	if len(matches) > 2 {
		unit = strings.ToUpper(matches[2])
	}

	var shift uint
	switch unit {
	case "T":
		shift = 40
	case "G":
		shift = 30
	case "M":
		shift = 20
	case "K":
		shift = 10
	}

	if value > math.MaxInt64>>shift {
		return 0, fmt.Errorf("size too large: %s", sizeStr)
	}
	return value << shift, nil
}
