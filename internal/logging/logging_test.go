package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel("WARN"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("bogus"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "info", "json")

	log.WithField("request_id", "abc").Info("hello")
	log.Debug("suppressed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "debug", "text")

	log.Debug("plain line")
	assert.Contains(t, buf.String(), "plain line")
	assert.Contains(t, buf.String(), "level=debug")
}
