// Package env sets up the debug link for host tools from flags,
// environment variables and an optional YAML file.
package env

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/dbgout/pkg/debug"
	"github.com/robotalks/dbgout/pkg/debug/usart"
	"github.com/robotalks/dbgout/pkg/trace"
)

// ErrNoTransport indicates neither a serial port nor a bridge is configured.
var ErrNoTransport = errors.New("no serial port or websocket bridge configured")

// Config provides common options of host tools.
type Config struct {
	// Port is the serial device, e.g. /dev/ttyUSB0.
	Port     string `yaml:"port"`
	Baudrate uint   `yaml:"baud"`

	// WebsocketURL is a websocket serial bridge, used when Port is empty.
	WebsocketURL string `yaml:"ws"`
	Origin       string `yaml:"origin"`

	// MQTTBrokerURL enables publishing of decoded records.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string `yaml:"mqtt"`
	// Source names the device in published records, machine ID if empty.
	Source string `yaml:"source"`

	// Timeout flushes a partial line after this long without input.
	Timeout time.Duration `yaml:"timeout"`
}

// Transport is an opened debug link.
type Transport interface {
	io.ReadWriteCloser
	debug.Transmitter
}

var (
	defaultConfig = Config{
		Baudrate: 115200,
		Origin:   usart.DefaultOrigin,
		Timeout:  trace.DefaultTimeout,
	}

	configFile string
)

func init() {
	applyEnv(&defaultConfig, os.Getenv)
	configFile = os.Getenv("DBGOUT_CONFIG")
}

func applyEnv(c *Config, getenv func(string) string) {
	if val := getenv("DBGOUT_PORT"); val != "" {
		c.Port = val
	}
	if val := getenv("DBGOUT_BAUD"); val != "" {
		if baud, err := strconv.ParseUint(val, 10, 32); err == nil {
			c.Baudrate = uint(baud)
		}
	}
	if val := getenv("DBGOUT_WS_URL"); val != "" {
		c.WebsocketURL = val
	}
	if val := getenv("DBGOUT_MQTT_URL"); val != "" {
		c.MQTTBrokerURL = val
	}
	if val := getenv("DBGOUT_SOURCE"); val != "" {
		c.Source = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "config", configFile, "YAML config file, flags take precedence.")
	setupFlags(flag.CommandLine, &defaultConfig)
}

func setupFlags(fs *flag.FlagSet, c *Config) {
	fs.StringVar(&c.Port, "port", c.Port, "Serial device.")
	fs.UintVar(&c.Baudrate, "baud", c.Baudrate, "Serial baud rate.")
	fs.StringVar(&c.WebsocketURL, "ws", c.WebsocketURL, "Websocket serial bridge URL, used without -port.")
	fs.StringVar(&c.Origin, "origin", c.Origin, "Websocket origin.")
	fs.StringVar(&c.MQTTBrokerURL, "mqtt", c.MQTTBrokerURL, "MQTT broker URL for publishing records.")
	fs.StringVar(&c.Source, "source", c.Source, "Source name of published records, machine ID if empty.")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Flush a partial line after this long without input.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// LoadFile overlays the default config with a YAML file. Flags already
// set on the command line keep their values.
func LoadFile(path string) error {
	return loadFile(flag.CommandLine, path, &defaultConfig)
}

func loadFile(fs *flag.FlagSet, path string, c *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	set := make(map[string]string)
	fs.Visit(func(fl *flag.Flag) {
		set[fl.Name] = fl.Value.String()
	})
	if err = c.Load(f); err != nil {
		return fmt.Errorf("load %s error: %v", path, err)
	}
	for name, val := range set {
		if err = fs.Set(name, val); err != nil {
			return err
		}
	}
	return nil
}

// Load decodes YAML from r over c.
func (c *Config) Load(r io.Reader) error {
	err := yaml.NewDecoder(r).Decode(c)
	if err == io.EOF {
		return nil
	}
	return err
}

// MustLoad loads the config file if one is given and returns a copy of
// the default config. It should be called after flag.Parse.
func MustLoad() *Config {
	if configFile != "" {
		if err := LoadFile(configFile); err != nil {
			log.Fatalln(err)
		}
	}
	return NewConfig()
}

// DebugConfig returns the Debugger configuration.
func (c *Config) DebugConfig() *debug.Config {
	return &debug.Config{Baudrate: uint32(c.Baudrate)}
}

// HasTransport indicates a link is configured.
func (c *Config) HasTransport() bool {
	return c.Port != "" || c.WebsocketURL != ""
}

// OpenTransport opens the serial port, or dials the bridge.
func (c *Config) OpenTransport() (Transport, error) {
	if c.Port != "" {
		port, err := usart.Open(c.Port, c.DebugConfig())
		if err != nil {
			return nil, err
		}
		return port, nil
	}
	if c.WebsocketURL != "" {
		conn, err := usart.Dial(c.WebsocketURL, c.Origin)
		if err != nil {
			return nil, fmt.Errorf("dial %s error: %v", c.WebsocketURL, err)
		}
		return conn, nil
	}
	return nil, ErrNoTransport
}

// MustOpenTransport opens the link and fails on error.
func (c *Config) MustOpenTransport() Transport {
	t, err := c.OpenTransport()
	if err != nil {
		log.Fatalln(err)
	}
	return t
}
