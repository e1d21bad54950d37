package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Byte-source adapter lifecycle.
 *
 * Description:	A communicator owns one byte source: a replayed file,
 *		a TCP peer, or a serial port.  Whichever it is, the
 *		source delivers opaque byte chunks to a data callback
 *		from a single reader goroutine, so the downstream
 *		receiver only ever sees one producer.
 *
 *		Start opens the source synchronously; a failure leaves
 *		the communicator stopped and is returned to the
 *		caller.  Stop is idempotent and may also happen from
 *		the inside when the source dries up or errors
 *		mid-stream.  Every transition is reported through the
 *		state callback.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

type comm_data_cb func(chunk []byte)
type comm_state_cb func(running bool)

type communicator_t struct {
	data_cb  comm_data_cb
	state_cb comm_state_cb
	logger   *log.Logger

	mu      sync.Mutex
	running bool
	quit    chan struct{}
	src     io.Closer
	wg      sync.WaitGroup
}

func comm_new(data comm_data_cb, state comm_state_cb, logger *log.Logger) *communicator_t {
	if logger == nil {
		logger = log.Default()
	}
	return &communicator_t{
		data_cb:  data,
		state_cb: state,
		logger:   logger,
	}
}

// comm_start opens the configured source and begins delivering
// chunks.  A running communicator is stopped first.
func comm_start(c *communicator_t, conf *source_config_s) error {
	comm_stop(c)

	var openErr error
	switch conf.Kind {
	case "file":
		openErr = comm_open_file(c, &conf.File)
	case "tcp-client":
		openErr = comm_open_tcp(c, &conf.Tcp)
	case "serial":
		openErr = comm_open_serial(c, &conf.Serial)
	default:
		openErr = fmt.Errorf("comm: unknown source kind %q", conf.Kind)
	}

	if openErr != nil {
		c.logger.Error("source start failed", "kind", conf.Kind, "err", openErr)
		return openErr
	}

	c.mu.Lock()
	c.running = true
	c.mu.Unlock()

	if c.state_cb != nil {
		c.state_cb(true)
	}
	c.logger.Info("source started", "kind", conf.Kind)
	return nil
}

// comm_stop shuts the source down and waits for the reader
// goroutine.  Safe to call when already stopped.
func comm_stop(c *communicator_t) {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.quit)
	if c.src != nil {
		c.src.Close() // unblocks a reader stuck in Read
	}
	c.mu.Unlock()

	c.wg.Wait()

	if c.state_cb != nil {
		c.state_cb(false)
	}
	c.logger.Info("source stopped")
}

func comm_running(c *communicator_t) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.running
}

// comm_halt is the internal variant of stop, called from the reader
// goroutine itself when the source ends or fails.  It must not wait
// for the reader.
func comm_halt(c *communicator_t, reason string) {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.quit)
	if c.src != nil {
		c.src.Close()
	}
	c.mu.Unlock()

	c.logger.Info("source ended", "reason", reason)
	if c.state_cb != nil {
		c.state_cb(false)
	}
}

// comm_arm records the opened resource and resets the quit channel.
// Called by the per-kind open functions before the reader starts.
func comm_arm(c *communicator_t, src io.Closer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.src = src
	c.quit = make(chan struct{})
}

func comm_quitting(c *communicator_t) bool {
	select {
	case <-c.quit:
		return true
	default:
		return false
	}
}
