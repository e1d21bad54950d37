package b2brec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func test_write_config(t *testing.T, body string) string {
	t.Helper()

	var path = filepath.Join(t.TempDir(), "b2brec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestConfigDefaults(t *testing.T) {
	var c = config_defaults()

	assert.Equal(t, "file", c.Source.Kind)
	assert.Equal(t, DEFAULT_FILE_BLOCK_SIZE, c.Source.File.BlockSize)
	assert.Equal(t, DEFAULT_FILE_INTERVAL_MS, c.Source.File.IntervalMs)
	assert.Equal(t, DEFAULT_TCP_HOST, c.Source.Tcp.Host)
	assert.Equal(t, DEFAULT_TCP_PORT, c.Source.Tcp.Port)
	assert.Equal(t, DEFAULT_SERIAL_BAUD, c.Source.Serial.Baud)
	assert.Equal(t, 8, c.Source.Serial.DataBits)
	assert.Equal(t, "none", c.Source.Serial.Parity)
	assert.Equal(t, 1, c.Source.Serial.StopBits)
}

func TestConfigLoad(t *testing.T) {
	var path = test_write_config(t, `
source:
  kind: tcp-client
  tcp:
    host: 192.168.1.40
server:
  enable: true
  announce: true
`)

	var c, err = config_load(path)
	require.NoError(t, err)

	assert.Equal(t, "tcp-client", c.Source.Kind)
	assert.Equal(t, "192.168.1.40", c.Source.Tcp.Host)
	// Unset fields keep their defaults.
	assert.Equal(t, DEFAULT_TCP_PORT, c.Source.Tcp.Port)
	assert.True(t, c.Server.Enable)
	assert.Equal(t, DEFAULT_SERVER_PORT, c.Server.Port)

	assert.NoError(t, config_validate(&c))
}

func TestConfigLoadMissingFile(t *testing.T) {
	var _, err = config_load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	var c = config_defaults()

	// File source without a path is incomplete.
	assert.Error(t, config_validate(&c))

	c.Source.File.Path = "capture.bin"
	assert.NoError(t, config_validate(&c))

	c.Source.Kind = "serial"
	assert.Error(t, config_validate(&c))
	c.Source.Serial.Port = "/dev/ttyUSB0"
	assert.NoError(t, config_validate(&c))

	c.Source.Kind = "carrier-pigeon"
	assert.Error(t, config_validate(&c))

	c.Source.Kind = "tcp-client"
	c.Source.Tcp.Port = 0
	assert.Error(t, config_validate(&c))
}

func TestConfigApplyFlags(t *testing.T) {
	var c = config_defaults()

	config_apply_flags(&c, "tcp-client", "", "example.net", 9000, "")
	assert.Equal(t, "tcp-client", c.Source.Kind)
	assert.Equal(t, "example.net", c.Source.Tcp.Host)
	assert.Equal(t, 9000, c.Source.Tcp.Port)

	// Zero values leave settings alone.
	config_apply_flags(&c, "", "", "", 0, "")
	assert.Equal(t, "tcp-client", c.Source.Kind)
	assert.Equal(t, 9000, c.Source.Tcp.Port)
}
