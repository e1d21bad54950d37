package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	File replay byte source.
 *
 * Description:	Reads a capture file in fixed-size blocks on a timer,
 *		imitating the pacing of a live receiver.  Defaults:
 *		1024 octets every 100 ms.  End of file or a read error
 *		ends the run.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"io"
	"os"
	"time"
)

func comm_open_file(c *communicator_t, conf *file_config_s) error {
	var f, openErr = os.Open(conf.Path)
	if openErr != nil {
		return openErr
	}

	comm_arm(c, f)

	var block = conf.BlockSize
	var interval = time.Duration(conf.IntervalMs) * time.Millisecond

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		var ticker = time.NewTicker(interval)
		defer ticker.Stop()

		var buf = make([]byte, block)
		for {
			select {
			case <-c.quit:
				return
			case <-ticker.C:
			}

			var n, readErr = f.Read(buf)
			if n > 0 {
				var chunk = make([]byte, n)
				copy(chunk, buf[:n])
				c.data_cb(chunk)
			}
			if readErr != nil {
				if !errors.Is(readErr, io.EOF) && !comm_quitting(c) {
					c.logger.Error("file read failed", "path", conf.Path, "err", readErr)
				}
				comm_halt(c, "end of file")
				return
			}
		}
	}()

	return nil
}
