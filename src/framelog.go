package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Save accepted navigation frames to a log file.
 *
 * Description:	Rather than the raw frame bytes, write separated
 *		properties in CSV format for easy reading and later
 *		processing.
 *
 *		Two alternatives:
 *
 *		  path + daily=false	One file, appended forever;
 *					rotation left to logrotate.
 *
 *		  path + daily=true	path is a directory and a new
 *					file named after the UTC date
 *					is started at midnight.
 *
 *		The time column format is a strftime pattern from the
 *		configuration.
 *
 *------------------------------------------------------------------*/

import (
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
)

const FRAMELOG_HEADER = "utime,time,prn,msg_type,frame"

type framelog_t struct {
	daily      bool
	path       string
	stamp      *strftime.Strftime
	fp         *os.File
	open_fname string
	logger     *log.Logger
}

func framelog_new(conf *framelog_config_s, logger *log.Logger) (*framelog_t, error) {
	if logger == nil {
		logger = log.Default()
	}
	if conf.Path == "" {
		return nil, nil
	}

	var pattern, patErr = strftime.New(conf.Stamp)
	if patErr != nil {
		return nil, fmt.Errorf("framelog: bad stamp format %q: %w", conf.Stamp, patErr)
	}

	var fl = &framelog_t{
		daily:  conf.Daily,
		path:   conf.Path,
		stamp:  pattern,
		logger: logger,
	}

	if fl.daily {
		var stat, statErr = os.Stat(fl.path)
		if statErr == nil {
			if !stat.IsDir() {
				return nil, fmt.Errorf("framelog: %q is not a directory", fl.path)
			}
		} else if mkdirErr := os.Mkdir(fl.path, 0755); mkdirErr != nil {
			return nil, fmt.Errorf("framelog: %w", mkdirErr)
		}
	}

	return fl, nil
}

// framelog_write appends one accepted frame.
func framelog_write(fl *framelog_t, frame []byte, prn uint8, msg_type uint8) {
	if fl == nil {
		return
	}

	var now = time.Now().UTC()

	if fl.daily {
		// Automatic daily file names, UTC date.
		var fname = now.Format("2006-01-02.log")

		if fl.fp != nil && fname != fl.open_fname {
			framelog_term(fl)
		}

		if fl.fp == nil {
			framelog_open(fl, filepath.Join(fl.path, fname))
			fl.open_fname = fname
		}
	} else if fl.fp == nil {
		framelog_open(fl, fl.path)
	}

	if fl.fp == nil {
		return
	}

	var w = csv.NewWriter(fl.fp)
	w.Write([]string{
		strconv.FormatInt(now.Unix(), 10),
		fl.stamp.FormatString(now),
		strconv.Itoa(int(prn)),
		strconv.Itoa(int(msg_type)),
		hex.EncodeToString(frame),
	})
	w.Flush()

	if writeErr := w.Error(); writeErr != nil {
		fl.logger.Error("frame log write failed", "err", writeErr)
	}
}

func framelog_open(fl *framelog_t, full_path string) {
	// Write the CSV header only when starting a fresh file.
	var _, statErr = os.Stat(full_path)
	var already_there = statErr == nil

	var f, openErr = os.OpenFile(full_path, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0644)
	if openErr != nil {
		fl.logger.Error("can't open frame log", "path", full_path, "err", openErr)
		return
	}

	fl.fp = f
	fl.logger.Info("opened frame log", "path", full_path)

	if !already_there {
		fmt.Fprintln(fl.fp, FRAMELOG_HEADER)
	}
}

// framelog_term closes any open log file.  Called when exiting or
// when the date changes.
func framelog_term(fl *framelog_t) {
	if fl == nil || fl.fp == nil {
		return
	}
	fl.fp.Close()
	fl.fp = nil
	fl.open_fname = ""
}
