package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	TCP client byte source.
 *
 * Description:	Connects to a receiver front-end that streams encoded
 *		frames over TCP.  Chunks arrive as the peer sends
 *		them; a closed or failed connection ends the run.
 *
 *------------------------------------------------------------------*/

import (
	"net"
	"strconv"
	"time"
)

const TCP_CONNECT_TIMEOUT = 5 * time.Second
const TCP_READ_CHUNK = 4096

func comm_open_tcp(c *communicator_t, conf *tcp_config_s) error {
	var addr = net.JoinHostPort(conf.Host, strconv.Itoa(conf.Port))

	var conn, dialErr = net.DialTimeout("tcp", addr, TCP_CONNECT_TIMEOUT)
	if dialErr != nil {
		return dialErr
	}

	comm_arm(c, conn)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		var buf = make([]byte, TCP_READ_CHUNK)
		for {
			var n, readErr = conn.Read(buf)
			if n > 0 {
				var chunk = make([]byte, n)
				copy(chunk, buf[:n])
				c.data_cb(chunk)
			}
			if readErr != nil {
				if !comm_quitting(c) {
					c.logger.Error("connection lost", "peer", addr, "err", readErr)
				}
				comm_halt(c, "connection closed")
				return
			}
		}
	}()

	return nil
}
