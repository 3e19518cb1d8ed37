package sim

import (
	"flag"
	"fmt"
)

// Config defines how a simulation runs.
type Config struct {
	Cycles    uint64
	UntilDone bool
	Input     string
}

// Inputs
const (
	InputIdle     = "idle"
	InputLoopback = "loopback"
)

// DefaultCycles is the length of the board testbench.
const DefaultCycles uint64 = 8192

var defaultConfig = Config{
	Cycles: DefaultCycles,
	Input:  InputIdle,
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.Uint64Var(&defaultConfig.Cycles, "cycles", defaultConfig.Cycles, "Number of cycles to simulate, the limit with -until-done.")
	flag.BoolVar(&defaultConfig.UntilDone, "until-done", defaultConfig.UntilDone, "Stop once the message has been sent.")
	flag.StringVar(&defaultConfig.Input, "input", defaultConfig.Input, "Serial input: idle or loopback.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates the default configuration.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Stimulus resolves the input option.
func (c *Config) Stimulus() (Stimulus, error) {
	switch c.Input {
	case "", InputIdle:
		return IdleInput, nil
	case InputLoopback:
		return Loopback, nil
	}
	return nil, fmt.Errorf("unknown input %q", c.Input)
}

// NewSim creates a Sim for the design.
func (c *Config) NewSim(d Design) (*Sim, error) {
	stimulus, err := c.Stimulus()
	if err != nil {
		return nil, err
	}
	s := New(d)
	s.Stimulus = stimulus
	return s, nil
}
