package b2brec

import (
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameserverBroadcast(t *testing.T) {
	// Port 0 asks the kernel for a free port.
	var conf = server_config_s{Enable: true}

	var fs, startErr = frameserver_start(&conf, log.New(io.Discard))
	require.NoError(t, startErr)
	defer frameserver_stop(fs)

	var port = fs.listener.Addr().(*net.TCPAddr).Port
	var conn, dialErr = net.DialTimeout("tcp",
		net.JoinHostPort("127.0.0.1", strconv.Itoa(port)), 5*time.Second)
	require.NoError(t, dialErr)
	defer conn.Close()

	// Give the accept loop a moment to register the client.
	test_wait_for(t, func() bool {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return len(fs.clients) == 1
	})

	var frame = testFrameBytes(testDecodedPRN10Hex)
	frameserver_broadcast(fs, frame, 10, 10)

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg = make([]byte, 3+len(frame))
	var _, readErr = io.ReadFull(conn, msg)
	require.NoError(t, readErr)

	assert.Equal(t, byte(10), msg[0])
	assert.Equal(t, byte(10), msg[1])
	assert.Equal(t, byte(DECODED_FRAME_LEN), msg[2])
	assert.Equal(t, frame, msg[3:])
}

func TestFrameserverDeadClientDropped(t *testing.T) {
	var conf = server_config_s{Enable: true}

	var fs, startErr = frameserver_start(&conf, log.New(io.Discard))
	require.NoError(t, startErr)
	defer frameserver_stop(fs)

	var conn, dialErr = net.Dial("tcp",
		net.JoinHostPort("127.0.0.1", strconv.Itoa(fs.listener.Addr().(*net.TCPAddr).Port)))
	require.NoError(t, dialErr)

	test_wait_for(t, func() bool {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return len(fs.clients) == 1
	})
	conn.Close()

	// Broadcasting into the closed connection eventually sheds it.
	var frame = testFrameBytes(testDecodedPRN10Hex)
	test_wait_for(t, func() bool {
		frameserver_broadcast(fs, frame, 10, 10)
		fs.mu.Lock()
		defer fs.mu.Unlock()
		return len(fs.clients) == 0
	})
}

func TestFrameserverNilSafe(t *testing.T) {
	frameserver_broadcast(nil, nil, 0, 0)
	frameserver_stop(nil)
}

func TestFrameserverPortBusy(t *testing.T) {
	var ln, err = net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	var conf = server_config_s{Enable: true, Port: ln.Addr().(*net.TCPAddr).Port}
	var _, startErr = frameserver_start(&conf, log.New(io.Discard))
	assert.Error(t, startErr)
}
