package mqtt

import (
	"flag"
	"os"

	"github.com/denisbrodbeck/machineid"
)

// Config provides common options to publish to a broker.
type Config struct {
	// URL specifies the broker, e.g. mqtt://host:port/topic-prefix/.
	// Empty disables publishing.
	URL string
	// ID identifies the simulator instance.
	ID string
}

var defaultConfig = Config{}

func init() {
	if val := os.Getenv("UARTSIM_MQTT_URL"); val != "" {
		defaultConfig.URL = val
	}
	if val := os.Getenv("UARTSIM_ID"); val != "" {
		defaultConfig.ID = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.URL, "mqtt", defaultConfig.URL, "MQTT broker URL, e.g. mqtt://localhost:1883/uartsim/.")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Simulator ID, defaults to the machine ID.")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Enabled indicates a broker is configured.
func (c *Config) Enabled() bool {
	return c.URL != ""
}

// InstanceID gets the configured ID or the machine ID.
func (c *Config) InstanceID() (string, error) {
	if c.ID != "" {
		return c.ID, nil
	}
	return machineid.ProtectedID("uartsim")
}

// NewPublisher creates a Publisher using current config.
func (c *Config) NewPublisher(meta Meta) (*Publisher, error) {
	id, err := c.InstanceID()
	if err != nil {
		return nil, err
	}
	return NewPublisher(c.URL, id, meta)
}
