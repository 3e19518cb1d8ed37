package rtl

import (
	"math"
	"time"
)

// Clock describes the driving clock by its period.
type Clock struct {
	// PeriodNS is the clock period in nanoseconds.
	PeriodNS float64
}

// ClockFromFrequency creates a Clock from a frequency in Hz.
func ClockFromFrequency(hz float64) Clock {
	return Clock{PeriodNS: 1e9 / hz}
}

// Validate checks the clock period is a positive real number.
func (c Clock) Validate() error {
	if !(c.PeriodNS > 0) || math.IsInf(c.PeriodNS, 0) {
		return Invalid("clock period", "%v ns is not a positive period", c.PeriodNS)
	}
	return nil
}

// Frequency gets the clock frequency in Hz.
func (c Clock) Frequency() float64 {
	return 1e9 / c.PeriodNS
}

// Duration converts a number of cycles into wall time.
func (c Clock) Duration(cycles uint64) time.Duration {
	return time.Duration(float64(cycles) * c.PeriodNS)
}

// Cycles converts wall time into the number of whole cycles.
func (c Clock) Cycles(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(float64(d) / c.PeriodNS)
}

// Divisor computes N = round(F/f), the number of driving-clock edges per
// period of the target frequency f.
func Divisor(clk Clock, target float64) (uint64, error) {
	if err := clk.Validate(); err != nil {
		return 0, err
	}
	if !(target > 0) || math.IsInf(target, 0) {
		return 0, Invalid("target frequency", "%v Hz must be positive", target)
	}
	freq := clk.Frequency()
	if target > freq {
		return 0, Invalid("target frequency", "%v Hz exceeds driving clock %v Hz", target, freq)
	}
	n := math.Round(freq / target)
	if n < 1 {
		n = 1
	}
	return uint64(n), nil
}
