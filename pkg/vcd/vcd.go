// Package vcd writes Value Change Dump waveforms.
package vcd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/robotalks/uartsim/pkg/rtl"
)

var (
	// ErrValueCount indicates the values don't match the declared probes.
	ErrValueCount = errors.New("value count mismatch")
	// ErrTimeOrder indicates a dump at or before the previous time.
	ErrTimeOrder = errors.New("time must increase")
)

// Writer is a VCD writer, one variable per probe.
type Writer struct {
	Module  string
	Version string

	w        *bufio.Writer
	probes   []rtl.Probe
	ids      []string
	last     []uint64
	periodPS uint64
	started  bool
	lastTime uint64
}

// NewWriter creates a writer with a 1ps timescale.
func NewWriter(w io.Writer, clk rtl.Clock, probes []rtl.Probe) *Writer {
	ids := make([]string, len(probes))
	for i := range probes {
		ids[i] = identifier(i)
	}
	return &Writer{
		Module:   "top",
		Version:  "uartsim",
		w:        bufio.NewWriter(w),
		probes:   probes,
		ids:      ids,
		last:     make([]uint64, len(probes)),
		periodPS: uint64(math.Round(clk.PeriodNS * 1000)),
	}
}

// identifier encodes n with the printable characters '!' to '~'.
func identifier(n int) string {
	const first, count = '!', '~' - '!' + 1
	var id []byte
	for {
		id = append(id, byte(first+n%count))
		if n /= count; n == 0 {
			break
		}
		n--
	}
	return string(id)
}

func (w *Writer) header() {
	fmt.Fprintf(w.w, "$version %s $end\n", w.Version)
	fmt.Fprintf(w.w, "$timescale 1ps $end\n")
	fmt.Fprintf(w.w, "$scope module %s $end\n", w.Module)
	for i, p := range w.probes {
		if p.Pin != "" {
			fmt.Fprintf(w.w, "$comment %s pin %s $end\n", p.Name, p.Pin)
		}
		fmt.Fprintf(w.w, "$var wire %d %s %s $end\n", p.Width, w.ids[i], p.Name)
	}
	fmt.Fprintf(w.w, "$upscope $end\n$enddefinitions $end\n")
}

func (w *Writer) value(i int, v uint64) {
	if w.probes[i].Width <= 1 {
		fmt.Fprintf(w.w, "%d%s\n", v&1, w.ids[i])
		return
	}
	fmt.Fprintf(w.w, "b%s %s\n", strconv.FormatUint(v&rtl.Mask(w.probes[i].Width), 2), w.ids[i])
}

// Dump writes the values at a cycle. The first dump writes the header and
// every value; later dumps only write changes.
func (w *Writer) Dump(cycle uint64, values []uint64) error {
	if len(values) != len(w.probes) {
		return fmt.Errorf("%d values for %d probes: %v", len(values), len(w.probes), ErrValueCount)
	}
	t := cycle * w.periodPS
	if !w.started {
		w.header()
		fmt.Fprintf(w.w, "#%d\n$dumpvars\n", t)
		for i, v := range values {
			w.value(i, v)
		}
		fmt.Fprintf(w.w, "$end\n")
		copy(w.last, values)
		w.started, w.lastTime = true, t
		return nil
	}
	if t <= w.lastTime {
		return fmt.Errorf("cycle %d: %v", cycle, ErrTimeOrder)
	}
	stamped := false
	for i, v := range values {
		if v == w.last[i] {
			continue
		}
		if !stamped {
			fmt.Fprintf(w.w, "#%d\n", t)
			stamped = true
		}
		w.value(i, v)
		w.last[i] = v
	}
	w.lastTime = t
	return nil
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
