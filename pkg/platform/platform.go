// Package platform provides the construction-time binding of logical
// lines to physical pins of a board.
package platform

import (
	"errors"
	"sort"
	"strconv"

	"github.com/robotalks/uartsim/pkg/rtl"
)

var (
	// ErrUnknownPlatform indicates the platform name is not registered.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrUnbound indicates a logical line has no pin binding.
	ErrUnbound = errors.New("line not bound")
)

// Line names a logical signal of a design, e.g. "serial.tx" or
// "user_led.3".
type Line string

// Indexed creates the name of an indexed resource like "user_led.3".
func Indexed(name string, index int) Line {
	return Line(name + "." + strconv.Itoa(index))
}

// Standard lines used by the designs in this repository.
const (
	LineClock    Line = "clk12"
	LineSerialTX Line = "serial.tx"
	LineSerialRX Line = "serial.rx"
)

// UserLED gets the line of the i-th user LED.
func UserLED(i int) Line {
	return Indexed("user_led", i)
}

// BindingTable maps logical lines to physical pin identifiers.
type BindingTable map[Line]string

// Lookup gets the pin bound to a line.
func (t BindingTable) Lookup(line Line) (string, error) {
	pin, ok := t[line]
	if !ok {
		return "", rtl.Wrap("line "+string(line), ErrUnbound)
	}
	return pin, nil
}

// Require checks all lines are bound.
func (t BindingTable) Require(lines ...Line) error {
	for _, line := range lines {
		if _, err := t.Lookup(line); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a table which can be modified independently.
func (t BindingTable) Copy() BindingTable {
	c := make(BindingTable, len(t))
	for line, pin := range t {
		c[line] = pin
	}
	return c
}

// Lines lists bound lines in name order.
func (t BindingTable) Lines() []Line {
	lines := make([]Line, 0, len(t))
	for line := range t {
		lines = append(lines, line)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i] < lines[j] })
	return lines
}

// Platform describes a board.
type Platform struct {
	Name string
	// Clock is the board oscillator driving the design.
	Clock rtl.Clock
	Pins  BindingTable
}

// WithClock returns a copy of the platform driven by a different clock.
func (p Platform) WithClock(clk rtl.Clock) Platform {
	p.Clock, p.Pins = clk, p.Pins.Copy()
	return p
}

var platforms = map[string]Platform{}

// Register makes a platform available by name.
func Register(p Platform) {
	platforms[p.Name] = p
}

// Get finds a registered platform. The returned pins are a copy.
func Get(name string) (Platform, error) {
	p, ok := platforms[name]
	if !ok {
		return Platform{}, rtl.Wrap("platform "+strconv.Quote(name), ErrUnknownPlatform)
	}
	p.Pins = p.Pins.Copy()
	return p, nil
}

// Names lists registered platforms.
func Names() []string {
	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
