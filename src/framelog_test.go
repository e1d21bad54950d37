package b2brec

import (
	"encoding/csv"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFramelogDisabled(t *testing.T) {
	var fl, err = framelog_new(&framelog_config_s{}, log.New(io.Discard))
	require.NoError(t, err)
	assert.Nil(t, fl)

	// Writing through a nil log is a no-op.
	framelog_write(nil, testFrameBytes(testDecodedPRN10Hex), 10, 10)
	framelog_term(nil)
}

func TestFramelogSingleFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "frames.log")
	var conf = framelog_config_s{Path: path, Stamp: "%Y-%m-%dT%H:%M:%SZ"}

	var fl, err = framelog_new(&conf, log.New(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, fl)

	var frame = testFrameBytes(testDecodedPRN10Hex)
	framelog_write(fl, frame, 10, 10)
	framelog_write(fl, frame, 10, 30)
	framelog_term(fl)

	var content, readErr = os.ReadFile(path)
	require.NoError(t, readErr)

	var lines = strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, FRAMELOG_HEADER, lines[0])

	var records, csvErr = csv.NewReader(strings.NewReader(lines[1])).Read()
	require.NoError(t, csvErr)
	require.Len(t, records, 5)
	assert.Equal(t, "10", records[2])
	assert.Equal(t, "10", records[3])
	assert.Equal(t, hex.EncodeToString(frame), records[4])
}

func TestFramelogDailyDirectory(t *testing.T) {
	var dir = filepath.Join(t.TempDir(), "frames")
	var conf = framelog_config_s{Path: dir, Daily: true, Stamp: "%H:%M:%S"}

	var fl, err = framelog_new(&conf, log.New(io.Discard))
	require.NoError(t, err)

	framelog_write(fl, testFrameBytes(testDecodedPRN10Hex), 10, 10)
	framelog_term(fl)

	var entries, dirErr = os.ReadDir(dir)
	require.NoError(t, dirErr)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}\.log$`, entries[0].Name())
}

func TestFramelogBadStamp(t *testing.T) {
	var conf = framelog_config_s{Path: "x.log", Stamp: "%Q"}
	var _, err = framelog_new(&conf, log.New(io.Discard))
	assert.Error(t, err)
}

func TestFramelogPathIsFile(t *testing.T) {
	// Daily mode needs a directory.
	var path = filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	var conf = framelog_config_s{Path: path, Daily: true, Stamp: "%H"}
	var _, err = framelog_new(&conf, log.New(io.Discard))
	assert.Error(t, err)
}
