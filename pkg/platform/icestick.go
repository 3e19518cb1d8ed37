package platform

import "github.com/robotalks/uartsim/pkg/rtl"

// IceStick is the Lattice iCEstick evaluation board (iCE40HX1K) with its
// 12 MHz oscillator and FTDI serial channel.
var IceStick = Platform{
	Name:  "icestick",
	Clock: rtl.ClockFromFrequency(12e6),
	Pins: BindingTable{
		LineClock:    "21",
		UserLED(0):   "99",
		UserLED(1):   "98",
		UserLED(2):   "97",
		UserLED(3):   "96",
		UserLED(4):   "95",
		LineSerialRX: "9",
		LineSerialTX: "8",
		"serial.rts": "7",
		"serial.cts": "4",
		"serial.dtr": "3",
		"serial.dsr": "2",
		"serial.dcd": "1",
	},
}

func init() {
	Register(IceStick)
}
