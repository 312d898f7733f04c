// filepath: internal/config/config_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"solarapi/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		hasError bool
	}{
		{"8MB", 8 * 1024 * 1024, false},
		{"512KB", 512 * 1024, false},
		{"1GB", 1 * 1024 * 1024 * 1024, false},
		{"100", 100, false},
		{"1024B", 1024, false},
		{" 4 MB ", 4194304, false},
		{"8mb", 8388608, false},
		{"invalid", 0, true},
		{"10XB", 0, true},
		{"-10MB", 0, true},
		{"8388607T", 8388607 << 40, false},
		{"8388608T", 0, true},
		{"99999999T", 0, true},
		{"9223372036854775807", 9223372036854775807, false},
		{"9223372036854775808", 0, true},
	}

	for _, tc := range tests {
		val, err := parseSize(tc.input)
		if tc.hasError {
			assert.Error(t, err, "Expected error for input: %s", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %s", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %s", tc.input)
		}
	}
}

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := Default()
		err := cfg.ParseAndValidate()
		require.NoError(t, err)
		assert.Equal(t, 5000, cfg.Server.Port)
		assert.Equal(t, int64(8388608), cfg.SummaryMaxSizeBytes)
		assert.True(t, filepath.IsAbs(cfg.SummaryAbsPath))
		assert.Equal(t, "summary.json", filepath.Base(cfg.SummaryAbsPath))
	})

	t.Run("Absolute Path Kept", func(t *testing.T) {
		cfg := Default()
		cfg.Summary.Path = "/var/lib/edge/summary.json"
		require.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, "/var/lib/edge/summary.json", cfg.SummaryAbsPath)
	})

	t.Run("Missing Summary File Is Not An Error", func(t *testing.T) {
		cfg := Default()
		cfg.Summary.Path = filepath.Join(t.TempDir(), "does-not-exist.json")
		assert.NoError(t, cfg.ParseAndValidate())
	})

	t.Run("Invalid Port", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Port = 70000
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid server port")
	})

	t.Run("Invalid Max Size", func(t *testing.T) {
		cfg := Default()
		cfg.Summary.MaxSize = "NotASize"
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid max_size")
	})

	t.Run("Zero Max Size", func(t *testing.T) {
		cfg := Default()
		cfg.Summary.MaxSize = "0"
		assert.Error(t, cfg.ParseAndValidate())
	})

	t.Run("Overflowing Max Size", func(t *testing.T) {
		cfg := Default()
		cfg.Summary.MaxSize = "99999999T"
		err := cfg.ParseAndValidate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid max_size")
	})

	t.Run("Retention And Interval", func(t *testing.T) {
		cfg := Default()
		require.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, 90*24*time.Hour, cfg.Retention)
		assert.Equal(t, time.Hour, cfg.HkInterval)

		cfg.Database.Retention = "0"
		require.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, time.Duration(0), cfg.Retention)
	})

	t.Run("Interval Too Short", func(t *testing.T) {
		cfg := Default()
		cfg.Database.HkInterval = "10s"
		assert.Error(t, cfg.ParseAndValidate())
	})

	t.Run("Invalid Log Format", func(t *testing.T) {
		cfg := Default()
		cfg.Logging.Format = "xml"
		assert.Error(t, cfg.ParseAndValidate())
	})
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Server.Port = 6060
	cfg.Summary.Path = "/data/summary.json"
	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, loaded.Server.Port)
	assert.Equal(t, "/data/summary.json", loaded.Summary.Path)
	assert.Equal(t, DefaultLogLevel, loaded.Logging.Level)
}

func TestLoadConfig_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := []byte(`
[server]
port = 8081

[summary]
path = "out/summary.json"
`)
	require.NoError(t, os.WriteFile(path, content, 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.Host)

	cfg.ApplyDefaults()
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, "out/summary.json", cfg.Summary.Path)
	assert.Equal(t, "0.0.0.0:8081", cfg.Addr())
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		hasError bool
	}{
		{"90d", 90 * 24 * time.Hour, false},
		{"1h", time.Hour, false},
		{"30m", 30 * time.Minute, false},
		{"0", 0, false},
		{" 2d ", 48 * time.Hour, false},
		{"-1d", 0, true},
		{"-5m", 0, true},
		{"xd", 0, true},
		{"soon", 0, true},
	}

	for _, tc := range tests {
		val, err := ParseDuration(tc.input)
		if tc.hasError {
			assert.Error(t, err, "Expected error for input: %s", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %s", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %s", tc.input)
		}
	}
}

func TestSaveConfig_Errors(t *testing.T) {
	t.Run("Create Fails", func(t *testing.T) {
		err := SaveConfig(filepath.Join(t.TempDir(), "missing", "config.toml"), Default())
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrorCreateFile))
	})

	t.Run("Encode Fails", func(t *testing.T) {
		if _, err := os.Stat("/dev/full"); err != nil {
			t.Skip("/dev/full not available")
		}
		err := SaveConfig("/dev/full", Default())
		require.Error(t, err)
		assert.True(t, errors.Is(err, shared.ErrorEncodeFile))
	})
}
