package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Announce the frame server using DNS-SD.
 *
 * Description:	Monitoring tools on the local network can discover a
 *		running receiver instead of being configured with an
 *		address and port.  Uses the pure-Go
 *		github.com/brutella/dnssd package, so no system
 *		daemon is needed.
 *
 *------------------------------------------------------------------*/

import (
	"context"
	"os"

	"github.com/brutella/dnssd"
	"github.com/charmbracelet/log"
)

const DNS_SD_SERVICE = "_bcnav3-frames._tcp"

func dns_sd_announce(conf *server_config_s, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}

	var name = conf.Name
	if name == "" {
		var hostname, _ = os.Hostname()
		name = "B-CNAV3 frames on " + hostname
	}

	var cfg = dnssd.Config{ //nolint:exhaustruct
		Name: name,
		Type: DNS_SD_SERVICE,
		Port: conf.Port,
	}

	var sv, svErr = dnssd.NewService(cfg)
	if svErr != nil {
		logger.Error("DNS-SD service failed", "err", svErr)
		return
	}

	var rp, rpErr = dnssd.NewResponder()
	if rpErr != nil {
		logger.Error("DNS-SD responder failed", "err", rpErr)
		return
	}

	if _, addErr := rp.Add(sv); addErr != nil {
		logger.Error("DNS-SD add failed", "err", addErr)
		return
	}

	logger.Info("DNS-SD announcing", "service", DNS_SD_SERVICE, "port", conf.Port, "name", name)

	go func() {
		if respondErr := rp.Respond(context.Background()); respondErr != nil {
			logger.Error("DNS-SD responder error", "err", respondErr)
		}
	}()
}
