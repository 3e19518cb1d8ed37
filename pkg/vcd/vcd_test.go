package vcd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/uartsim/pkg/rtl"
)

func TestIdentifier(t *testing.T) {
	require.Equal(t, "!", identifier(0))
	require.Equal(t, "~", identifier(93))
	require.Equal(t, "!!", identifier(94))
	require.Equal(t, "\"!", identifier(95))
	seen := map[string]bool{}
	for i := 0; i < 10000; i++ {
		id := identifier(i)
		require.False(t, seen[id], id)
		seen[id] = true
	}
}

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, rtl.Clock{PeriodNS: 83.333}, []rtl.Probe{
		{Name: "tx", Width: 1, Pin: "8"},
		{Name: "count", Width: 4},
	})
	require.NoError(t, w.Dump(0, []uint64{1, 5}))
	require.NoError(t, w.Dump(1, []uint64{1, 5}))
	require.NoError(t, w.Dump(2, []uint64{0, 5}))
	require.NoError(t, w.Dump(3, []uint64{0, 0x12}))
	require.NoError(t, w.Flush())

	expect := strings.Join([]string{
		"$version uartsim $end",
		"$timescale 1ps $end",
		"$scope module top $end",
		"$comment tx pin 8 $end",
		"$var wire 1 ! tx $end",
		"$var wire 4 \" count $end",
		"$upscope $end",
		"$enddefinitions $end",
		"#0",
		"$dumpvars",
		"1!",
		"b101 \"",
		"$end",
		"#166666",
		"0!",
		"#249999",
		"b10 \"",
		"",
	}, "\n")
	require.Equal(t, expect, buf.String())
}

func TestWriterErrors(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, rtl.Clock{PeriodNS: 10}, []rtl.Probe{{Name: "a", Width: 1}})
	err := w.Dump(0, []uint64{1, 2})
	require.Error(t, err)
	require.Contains(t, err.Error(), ErrValueCount.Error())
	require.NoError(t, w.Dump(5, []uint64{1}))
	err = w.Dump(5, []uint64{0})
	require.Error(t, err)
	require.Contains(t, err.Error(), ErrTimeOrder.Error())
}
