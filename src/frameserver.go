package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Provide decoded frames to other applications via a
 *		TCP socket.
 *
 * Description:	Listens on a TCP port and pushes every accepted
 *		frame to all connected clients.  A frame on the wire
 *		is:
 *
 *			octet 0		PRN
 *			octet 1		message type
 *			octet 2		payload length (61)
 *			octets 3..	decoded frame
 *
 *		Clients that cannot keep up or disconnect are dropped
 *		on the next write.  Nothing is read from clients.
 *
 *------------------------------------------------------------------*/

import (
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const FRAMESERVER_WRITE_TIMEOUT = 5 * time.Second

type frameserver_t struct {
	listener net.Listener
	logger   *log.Logger

	mu      sync.Mutex
	clients map[net.Conn]struct{}
	closed  bool
}

func frameserver_start(conf *server_config_s, logger *log.Logger) (*frameserver_t, error) {
	if logger == nil {
		logger = log.Default()
	}

	var ln, listenErr = net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(conf.Port)))
	if listenErr != nil {
		return nil, listenErr
	}

	var fs = &frameserver_t{
		listener: ln,
		logger:   logger,
		clients:  make(map[net.Conn]struct{}),
	}

	go frameserver_accept_loop(fs)

	logger.Info("frame server listening", "port", conf.Port)
	return fs, nil
}

func frameserver_accept_loop(fs *frameserver_t) {
	for {
		var conn, acceptErr = fs.listener.Accept()
		if acceptErr != nil {
			fs.mu.Lock()
			var closed = fs.closed
			fs.mu.Unlock()
			if !closed {
				fs.logger.Error("accept failed", "err", acceptErr)
			}
			return
		}

		fs.mu.Lock()
		fs.clients[conn] = struct{}{}
		fs.mu.Unlock()

		fs.logger.Info("frame client connected", "peer", conn.RemoteAddr())
	}
}

// frameserver_broadcast sends one accepted frame to every client.
func frameserver_broadcast(fs *frameserver_t, frame []byte, prn uint8, msg_type uint8) {
	if fs == nil {
		return
	}

	var msg = make([]byte, 3+len(frame))
	msg[0] = prn
	msg[1] = msg_type
	msg[2] = byte(len(frame))
	copy(msg[3:], frame)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	for conn := range fs.clients {
		conn.SetWriteDeadline(time.Now().Add(FRAMESERVER_WRITE_TIMEOUT))
		if _, writeErr := conn.Write(msg); writeErr != nil {
			fs.logger.Info("dropping frame client", "peer", conn.RemoteAddr(), "err", writeErr)
			conn.Close()
			delete(fs.clients, conn)
		}
	}
}

func frameserver_stop(fs *frameserver_t) {
	if fs == nil {
		return
	}

	fs.mu.Lock()
	fs.closed = true
	for conn := range fs.clients {
		conn.Close()
		delete(fs.clients, conn)
	}
	fs.mu.Unlock()

	fs.listener.Close()
}
