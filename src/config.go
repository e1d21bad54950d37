package b2brec

/*------------------------------------------------------------------
 *
 * Purpose:	Runtime configuration.
 *
 * Description:	One YAML document selects the byte source and its
 *		parameters, plus the optional frame log and frame
 *		server.  Anything not given falls back to the defaults
 *		below.
 *
 *		Example:
 *
 *		    source:
 *		      kind: tcp-client
 *		      tcp:
 *		        host: 192.168.1.40
 *		        port: 8888
 *		    framelog:
 *		      path: ./frames
 *		      daily: true
 *		    server:
 *		      enable: true
 *		      port: 8001
 *		      announce: true
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DEFAULT_FILE_BLOCK_SIZE = 1024
const DEFAULT_FILE_INTERVAL_MS = 100
const DEFAULT_TCP_HOST = "127.0.0.1"
const DEFAULT_TCP_PORT = 8888
const DEFAULT_SERIAL_BAUD = 9600
const DEFAULT_SERVER_PORT = 8001

type file_config_s struct {
	Path       string `yaml:"path"`
	BlockSize  int    `yaml:"blockSize"`
	IntervalMs int    `yaml:"intervalMs"`
}

type tcp_config_s struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type serial_config_s struct {
	Port     string `yaml:"port"`
	Baud     int    `yaml:"baud"`
	DataBits int    `yaml:"dataBits"`
	Parity   string `yaml:"parity"` // none, even, odd
	StopBits int    `yaml:"stopBits"`
	Flow     string `yaml:"flow"` // none, hardware, software
}

type source_config_s struct {
	Kind   string          `yaml:"kind"` // file, tcp-client, serial
	File   file_config_s   `yaml:"file"`
	Tcp    tcp_config_s    `yaml:"tcp"`
	Serial serial_config_s `yaml:"serial"`
}

type framelog_config_s struct {
	Path  string `yaml:"path"`
	Daily bool   `yaml:"daily"`
	Stamp string `yaml:"stamp"` // strftime format for the time column
}

type server_config_s struct {
	Enable   bool   `yaml:"enable"`
	Port     int    `yaml:"port"`
	Announce bool   `yaml:"announce"` // DNS-SD
	Name     string `yaml:"name"`
}

type config_s struct {
	Source   source_config_s   `yaml:"source"`
	Framelog framelog_config_s `yaml:"framelog"`
	Server   server_config_s   `yaml:"server"`
}

func config_defaults() config_s {
	var c config_s
	c.Source.Kind = "file"
	c.Source.File.BlockSize = DEFAULT_FILE_BLOCK_SIZE
	c.Source.File.IntervalMs = DEFAULT_FILE_INTERVAL_MS
	c.Source.Tcp.Host = DEFAULT_TCP_HOST
	c.Source.Tcp.Port = DEFAULT_TCP_PORT
	c.Source.Serial.Baud = DEFAULT_SERIAL_BAUD
	c.Source.Serial.DataBits = 8
	c.Source.Serial.Parity = "none"
	c.Source.Serial.StopBits = 1
	c.Source.Serial.Flow = "none"
	c.Framelog.Stamp = "%Y-%m-%dT%H:%M:%SZ"
	c.Server.Port = DEFAULT_SERVER_PORT
	return c
}

// config_load reads a YAML configuration file over the defaults.
func config_load(path string) (config_s, error) {
	var c = config_defaults()

	var data, readErr = os.ReadFile(path)
	if readErr != nil {
		return c, fmt.Errorf("config: %w", readErr)
	}

	if yamlErr := yaml.Unmarshal(data, &c); yamlErr != nil {
		return c, fmt.Errorf("config: %s: %w", path, yamlErr)
	}

	return c, nil
}

// config_apply_flags lays command-line overrides over the loaded
// configuration.  Empty or zero values leave the file settings
// alone.
func config_apply_flags(c *config_s, kind string, file_path string, tcp_host string, tcp_port int, serial_port string) {
	if kind != "" {
		c.Source.Kind = kind
	}
	if file_path != "" {
		c.Source.File.Path = file_path
	}
	if tcp_host != "" {
		c.Source.Tcp.Host = tcp_host
	}
	if tcp_port != 0 {
		c.Source.Tcp.Port = tcp_port
	}
	if serial_port != "" {
		c.Source.Serial.Port = serial_port
	}
}

func config_validate(c *config_s) error {
	switch c.Source.Kind {
	case "file":
		if c.Source.File.Path == "" {
			return fmt.Errorf("config: source.file.path is required for kind %q", c.Source.Kind)
		}
	case "tcp-client":
		if c.Source.Tcp.Port <= 0 || c.Source.Tcp.Port > 65535 {
			return fmt.Errorf("config: bad source.tcp.port %d", c.Source.Tcp.Port)
		}
	case "serial":
		if c.Source.Serial.Port == "" {
			return fmt.Errorf("config: source.serial.port is required for kind %q", c.Source.Kind)
		}
	default:
		return fmt.Errorf("config: unknown source.kind %q", c.Source.Kind)
	}

	if c.Source.File.BlockSize <= 0 {
		c.Source.File.BlockSize = DEFAULT_FILE_BLOCK_SIZE
	}
	if c.Source.File.IntervalMs <= 0 {
		c.Source.File.IntervalMs = DEFAULT_FILE_INTERVAL_MS
	}
	return nil
}
