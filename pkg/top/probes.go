package top

import (
	"fmt"

	"github.com/robotalks/uartsim/pkg/platform"
	"github.com/robotalks/uartsim/pkg/rtl"
)

// Probes describes the values returned by Snapshot.Values, in order.
func (t *Top) Probes() []rtl.Probe {
	pin := func(line platform.Line) string {
		p, _ := t.Platform.Pins.Lookup(line)
		return p
	}
	probes := []rtl.Probe{
		{Name: "tick", Width: 1},
		{Name: "serial_tx", Width: 1, Pin: pin(platform.LineSerialTX)},
		{Name: "serial_rx", Width: 1, Pin: pin(platform.LineSerialRX)},
		{Name: "rx", Width: 1},
	}
	for i := 0; i < NumLEDs; i++ {
		probes = append(probes, rtl.Probe{
			Name:  fmt.Sprintf("user_led%d", i),
			Width: 1,
			Pin:   pin(platform.UserLED(i)),
		})
	}
	return append(probes,
		rtl.Probe{Name: "state", Width: 1},
		rtl.Probe{Name: "index", Width: rtl.BitsFor(uint64(t.Transmitter.Sequencer.Len() - 1))},
		rtl.Probe{Name: "shift_index", Width: rtl.BitsFor(9)},
		rtl.Probe{Name: "timer", Width: t.Transmitter.Divider.Width()},
	)
}

func bit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Values lists the signal values matching Top.Probes.
func (s Snapshot) Values() []uint64 {
	vals := []uint64{bit(s.Tick), bit(s.TX), bit(s.RXRaw), bit(s.RX)}
	for _, led := range s.LEDs {
		vals = append(vals, bit(led))
	}
	return append(vals, uint64(s.State), uint64(s.Index), uint64(s.ShiftIndex), s.Divider)
}
