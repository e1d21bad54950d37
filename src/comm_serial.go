package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Serial port byte source.
 *
 * Description:	Opens the device in raw mode and applies the UART
 *		framing from the configuration: baud rate, character
 *		size, parity, stop bits and flow control, via termios.
 *		VMIN=1/VTIME=0 so reads block until at least one
 *		octet is available.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const SERIAL_READ_CHUNK = 1024

var serial_baud_flags = map[int]uint32{
	1200:   unix.B1200,
	2400:   unix.B2400,
	4800:   unix.B4800,
	9600:   unix.B9600,
	19200:  unix.B19200,
	38400:  unix.B38400,
	57600:  unix.B57600,
	115200: unix.B115200,
}

var serial_size_flags = map[int]uint32{
	5: unix.CS5,
	6: unix.CS6,
	7: unix.CS7,
	8: unix.CS8,
}

// serial_port_open opens and configures a serial device.
func serial_port_open(conf *serial_config_s) (*os.File, error) {
	var baud, baudOk = serial_baud_flags[conf.Baud]
	if !baudOk {
		return nil, fmt.Errorf("serial: unsupported baud rate %d", conf.Baud)
	}
	var size, sizeOk = serial_size_flags[conf.DataBits]
	if !sizeOk {
		return nil, fmt.Errorf("serial: unsupported data bits %d", conf.DataBits)
	}

	var f, openErr = os.OpenFile(conf.Port, os.O_RDWR|unix.O_NOCTTY, 0)
	if openErr != nil {
		return nil, openErr
	}

	var fd = int(f.Fd())
	var tio, getErr = unix.IoctlGetTermios(fd, unix.TCGETS)
	if getErr != nil {
		f.Close()
		return nil, fmt.Errorf("serial: TCGETS %s: %w", conf.Port, getErr)
	}

	// Raw mode, receiver enabled, modem status lines ignored.
	tio.Iflag = 0
	tio.Oflag = 0
	tio.Lflag = 0
	tio.Cflag = unix.CREAD | unix.CLOCAL | baud | size

	switch conf.Parity {
	case "", "none":
	case "even":
		tio.Cflag |= unix.PARENB
		tio.Iflag |= unix.INPCK
	case "odd":
		tio.Cflag |= unix.PARENB | unix.PARODD
		tio.Iflag |= unix.INPCK
	default:
		f.Close()
		return nil, fmt.Errorf("serial: unsupported parity %q", conf.Parity)
	}

	switch conf.StopBits {
	case 0, 1:
	case 2:
		tio.Cflag |= unix.CSTOPB
	default:
		f.Close()
		return nil, fmt.Errorf("serial: unsupported stop bits %d", conf.StopBits)
	}

	switch conf.Flow {
	case "", "none":
	case "hardware":
		tio.Cflag |= unix.CRTSCTS
	case "software":
		tio.Iflag |= unix.IXON | unix.IXOFF
	default:
		f.Close()
		return nil, fmt.Errorf("serial: unsupported flow control %q", conf.Flow)
	}

	tio.Cc[unix.VMIN] = 1
	tio.Cc[unix.VTIME] = 0
	tio.Ispeed = baud
	tio.Ospeed = baud

	if setErr := unix.IoctlSetTermios(fd, unix.TCSETS, tio); setErr != nil {
		f.Close()
		return nil, fmt.Errorf("serial: TCSETS %s: %w", conf.Port, setErr)
	}

	return f, nil
}

func comm_open_serial(c *communicator_t, conf *serial_config_s) error {
	var f, openErr = serial_port_open(conf)
	if openErr != nil {
		return openErr
	}

	comm_arm(c, f)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		var buf = make([]byte, SERIAL_READ_CHUNK)
		for {
			var n, readErr = f.Read(buf)
			if n > 0 {
				var chunk = make([]byte, n)
				copy(chunk, buf[:n])
				c.data_cb(chunk)
			}
			if readErr != nil {
				if !comm_quitting(c) {
					c.logger.Error("serial read failed", "port", conf.Port, "err", readErr)
				}
				comm_halt(c, "port closed")
				return
			}
		}
	}()

	return nil
}
