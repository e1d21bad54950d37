package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:   	Main program for the B-CNAV3 navigation message
 *		receiver:
 *
 *			Frame synchronization on a raw byte stream.
 *			Non-binary LDPC decoding over GF(2^6).
 *			CRC-24Q verification.
 *			PRN / message-type extraction with PRN lock.
 *			File replay, TCP and serial byte sources.
 *			CSV frame log.
 *			TCP frame service with DNS-SD announcement.
 *
 * Outputs:	Decoded frames are written to stdout and, when
 *		enabled, to the frame log and the frame service.
 *
 *---------------------------------------------------------------*/

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

func B2bRecMain() {
	var configFileName = pflag.StringP("config-file", "c", "b2brec.yaml", "Configuration file name.")
	var sourceKind = pflag.StringP("source", "s", "", "Byte source: file, tcp-client or serial.  Overrides the config file.")
	var filePath = pflag.StringP("file", "f", "", "Capture file to replay (source: file).")
	var tcpHost = pflag.StringP("host", "H", "", "Peer to connect to (source: tcp-client).")
	var tcpPort = pflag.IntP("port", "p", 0, "Peer TCP port (source: tcp-client).")
	var serialPort = pflag.StringP("serial-port", "S", "", "Serial device (source: serial).")
	var verbose = pflag.BoolP("verbose", "v", false, "Debug level logging.")
	var quiet = pflag.BoolP("quiet", "q", false, "Only warnings and errors.")
	pflag.Parse()

	var logger = log.NewWithOptions(os.Stderr, log.Options{ //nolint:exhaustruct
		ReportTimestamp: true,
		Prefix:          "b2brec",
	})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}
	if *quiet {
		logger.SetLevel(log.WarnLevel)
	}

	var conf, confErr = config_load(*configFileName)
	if confErr != nil {
		// A missing config file is fine when the source comes
		// from the command line instead.
		if !errors.Is(confErr, os.ErrNotExist) || *sourceKind == "" {
			logger.Fatal("bad configuration", "err", confErr)
		}
	}

	config_apply_flags(&conf, *sourceKind, *filePath, *tcpHost, *tcpPort, *serialPort)
	if validateErr := config_validate(&conf); validateErr != nil {
		logger.Fatal("bad configuration", "err", validateErr)
	}

	var framelog, flErr = framelog_new(&conf.Framelog, logger)
	if flErr != nil {
		logger.Fatal("frame log", "err", flErr)
	}

	var server *frameserver_t
	if conf.Server.Enable {
		var serverErr error
		server, serverErr = frameserver_start(&conf.Server, logger)
		if serverErr != nil {
			logger.Fatal("frame server", "err", serverErr)
		}
		if conf.Server.Announce {
			dns_sd_announce(&conf.Server, logger)
		}
	}

	var receiver = receiver_new(func(frame []byte, prn uint8, msg_type uint8) {
		fmt.Printf("PRN %2d  type %2d  %s\n", prn, msg_type, hex.EncodeToString(frame))
		framelog_write(framelog, frame, prn, msg_type)
		frameserver_broadcast(server, frame, prn, msg_type)
	}, logger)

	var done = make(chan struct{})
	var done_once = false
	var comm = comm_new(
		func(chunk []byte) { receiver_process_bytes(receiver, chunk) },
		func(running bool) {
			if !running && !done_once {
				done_once = true
				close(done)
			}
		},
		logger,
	)

	receiver_start(receiver)
	if startErr := comm_start(comm, &conf.Source); startErr != nil {
		logger.Fatal("cannot start source", "err", startErr)
	}

	var sig = make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sig:
		logger.Info("interrupted")
	case <-done:
	}

	comm_stop(comm)
	receiver_stop(receiver)
	frameserver_stop(server)
	framelog_term(framelog)
}
