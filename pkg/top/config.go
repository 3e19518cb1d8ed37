package top

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/robotalks/uartsim/pkg/platform"
	"github.com/robotalks/uartsim/pkg/rtl"
)

// Config defines the parameters of the design.
type Config struct {
	Platform string
	// ClockPeriodNS overrides the platform clock when non-zero.
	ClockPeriodNS float64
	Baud          float64
	Message       []byte
	TXBlinkRate   float64
	RXBlinkRate   float64
}

// Defaults
const (
	DefaultPlatform    = "icestick"
	DefaultBaud        = 115200
	DefaultMessage     = "henlo\r\n"
	DefaultTXBlinkRate = 10
	DefaultRXBlinkRate = 3
)

var defaultConfig = Config{
	Platform:    DefaultPlatform,
	Baud:        DefaultBaud,
	Message:     []byte(DefaultMessage),
	TXBlinkRate: DefaultTXBlinkRate,
	RXBlinkRate: DefaultRXBlinkRate,
}

// messageValue accepts Go string escapes on the command line.
type messageValue struct {
	msg *[]byte
}

func (v messageValue) String() string {
	if v.msg == nil {
		return ""
	}
	s := strconv.Quote(string(*v.msg))
	return s[1 : len(s)-1]
}

func (v messageValue) Set(s string) error {
	msg, err := ParseMessage(s)
	if err != nil {
		return err
	}
	*v.msg = msg
	return nil
}

// ParseMessage decodes a message written with Go string escapes.
func ParseMessage(s string) ([]byte, error) {
	unquoted, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return nil, fmt.Errorf("invalid message %q: %v", s, err)
	}
	return []byte(unquoted), nil
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Platform, "platform", defaultConfig.Platform, "Board platform.")
	flag.Float64Var(&defaultConfig.ClockPeriodNS, "clk-period", defaultConfig.ClockPeriodNS, "Clock period (ns), 0 uses the platform clock.")
	flag.Float64Var(&defaultConfig.Baud, "baud", defaultConfig.Baud, "UART baud rate.")
	flag.Var(messageValue{&defaultConfig.Message}, "message", "Message to transmit, Go escapes accepted.")
	flag.Float64Var(&defaultConfig.TXBlinkRate, "tx-blink-rate", defaultConfig.TXBlinkRate, "TX LED blink rate (1/s).")
	flag.Float64Var(&defaultConfig.RXBlinkRate, "rx-blink-rate", defaultConfig.RXBlinkRate, "RX LED blink rate (1/s).")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	conf.Message = append([]byte(nil), defaultConfig.Message...)
	return &conf
}

// ResolvePlatform finds the platform, applying the clock override.
func (c *Config) ResolvePlatform() (platform.Platform, error) {
	p, err := platform.Get(c.Platform)
	if err != nil {
		return p, err
	}
	if c.ClockPeriodNS != 0 {
		clk := rtl.Clock{PeriodNS: c.ClockPeriodNS}
		if err := clk.Validate(); err != nil {
			return p, err
		}
		p = p.WithClock(clk)
	}
	return p, nil
}

// NewTop creates the design from config.
func (c *Config) NewTop() (*Top, error) {
	p, err := c.ResolvePlatform()
	if err != nil {
		return nil, err
	}
	return New(p, Params{
		Baud:        c.Baud,
		Message:     c.Message,
		TXBlinkRate: c.TXBlinkRate,
		RXBlinkRate: c.RXBlinkRate,
	})
}
