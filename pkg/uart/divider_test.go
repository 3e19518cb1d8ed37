package uart

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uartsim/pkg/rtl"
)

func TestClockDividerTicks(t *testing.T) {
	d, err := NewClockDivider(rtl.ClockFromFrequency(12e6), 115200)
	require.NoError(t, err)
	require.Equal(t, uint64(104), d.Divisor())
	require.Equal(t, uint(7), d.Width())

	s := d.Reset()
	for e := uint64(0); e < 104*20; e++ {
		expect := e >= 104 && (e-104)%104 == 0
		require.Equalf(t, expect, d.Tick(s), "edge %d", e)
		require.True(t, s.Counter <= d.Divisor())
		s = d.Next(s)
	}
}

func TestClockDividerTickOnReset(t *testing.T) {
	d, err := NewClockDivider(rtl.ClockFromFrequency(1000), 100, TickOnReset())
	require.NoError(t, err)
	s := d.Reset()
	var ticks []int
	for e := 0; e < 35; e++ {
		if d.Tick(s) {
			ticks = append(ticks, e)
		}
		s = d.Next(s)
	}
	require.Equal(t, []int{0, 10, 20, 30}, ticks)
}

func TestClockDividerInterval(t *testing.T) {
	testCases := []struct {
		name    string
		freq    float64
		target  float64
		divisor uint64
	}{
		{"same rate", 1e6, 1e6, 1},
		{"half", 1e6, 5e5, 2},
		{"odd", 1e6, 333333, 3},
		{"icestick", 12e6, 115200, 104},
		{"9600", 12e6, 9600, 1250},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := NewClockDivider(rtl.ClockFromFrequency(tc.freq), tc.target)
			require.NoError(t, err)
			require.Equal(t, tc.divisor, d.Divisor())
			s := d.Reset()
			last, count := -1, 0
			for e := 0; e < int(tc.divisor)*8+1; e++ {
				if d.Tick(s) {
					if last >= 0 {
						require.Equal(t, int(tc.divisor), e-last)
					}
					last = e
					count++
				}
				s = d.Next(s)
			}
			require.Equal(t, 8, count)
		})
	}
}

func TestClockDividerConfigError(t *testing.T) {
	_, err := NewClockDivider(rtl.ClockFromFrequency(1e6), 0)
	require.Error(t, err)
	_, err = NewClockDivider(rtl.ClockFromFrequency(1e6), 2e6)
	require.Error(t, err)
	_, ok := err.(*rtl.ConfigError)
	require.True(t, ok)
}
