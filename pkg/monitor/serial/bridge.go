// Package serial bridges the simulated serial port to a host serial
// device: decoded TX bytes are written to the device and bytes read from
// it are driven onto the simulated RX line.
package serial

import (
	"context"
	"flag"
	"io"
	"sync"

	"github.com/golang/glog"
	"github.com/tarm/serial"

	"github.com/robotalks/uartsim/pkg/events"
	fx "github.com/robotalks/uartsim/pkg/framework"
	"github.com/robotalks/uartsim/pkg/top"
	"github.com/robotalks/uartsim/pkg/uart"
)

// InputQueueSize is the number of bytes read from the device waiting to be
// driven onto RX.
const InputQueueSize = 1024

// Config specifies the host device.
type Config struct {
	// Device is the device path, e.g. /dev/ttyUSB0. Empty disables the
	// bridge.
	Device string
	Baud   int
}

var defaultConfig = Config{Baud: 115200}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Device, "serial", defaultConfig.Device, "Host serial device to bridge.")
	flag.IntVar(&defaultConfig.Baud, "serial-baud", defaultConfig.Baud, "Baud rate of the host serial device.")
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Enabled indicates a device is configured.
func (c *Config) Enabled() bool {
	return c.Device != ""
}

// Open opens the device as a Bridge.
func (c *Config) Open() (*Bridge, error) {
	port, err := serial.OpenPort(&serial.Config{Name: c.Device, Baud: c.Baud})
	if err != nil {
		return nil, err
	}
	glog.Infof("serial bridge on %s at %d baud", c.Device, c.Baud)
	return NewBridge(port), nil
}

// Bridge is a monitor.Sink writing decoded bytes to a port.
type Bridge struct {
	Port io.ReadWriteCloser

	lock    sync.Mutex
	written int
	inputCh chan byte
}

// NewBridge creates a Bridge over an opened port.
func NewBridge(port io.ReadWriteCloser) *Bridge {
	return &Bridge{Port: port, inputCh: make(chan byte, InputQueueSize)}
}

// Written is the number of bytes written to the port.
func (b *Bridge) Written() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.written
}

// Publish implements monitor.Sink. Bytes with framing errors are dropped.
func (b *Bridge) Publish(ev events.Event) error {
	decoded, ok := ev.(*events.ByteDecoded)
	if !ok || decoded.FramingError {
		return nil
	}
	b.lock.Lock()
	defer b.lock.Unlock()
	n, err := b.Port.Write([]byte{decoded.Byte()})
	b.written += n
	return err
}

// Run implements Runnable. It reads the port until the context is
// canceled and closes the port.
func (b *Bridge) Run(ctx context.Context) error {
	return fx.RunWithContextCloser(ctx, b.Port, func() error {
		buf := make([]byte, 64)
		for {
			n, err := b.Port.Read(buf)
			for _, c := range buf[:n] {
				select {
				case b.inputCh <- c:
				default:
					glog.Warningf("serial input overflow, byte %#02x dropped", c)
				}
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
		}
	})
}

// Stimulus drives bytes read from the port onto RX with bits lasting
// divisor cycles. It implements sim.Stimulus.
func (b *Bridge) Stimulus(divisor uint64) *Input {
	return &Input{bridge: b, encoder: uart.NewEncoder(divisor)}
}

// Input is the RX stimulus of a Bridge.
type Input struct {
	bridge  *Bridge
	encoder *uart.Encoder
}

// RX implements sim.Stimulus.
func (in *Input) RX(top.Snapshot) bool {
	if !in.encoder.Busy() {
		select {
		case c := <-in.bridge.inputCh:
			in.encoder.Write([]byte{c})
		default:
		}
	}
	return in.encoder.Level()
}
