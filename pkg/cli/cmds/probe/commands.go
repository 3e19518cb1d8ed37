package probe

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/uartsim/pkg/cli/sh"
	"github.com/robotalks/uartsim/pkg/events"
	"github.com/robotalks/uartsim/pkg/top"
)

// Decoded is the bytes seen on TX.
type Decoded []byte

// String implements fmt.Stringer.
func (d Decoded) String() string {
	return fmt.Sprintf("%q", []byte(d))
}

// MarshalJSON implements json.Marshaler.
func (d Decoded) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(d))
}

// LEDs is the state of the user LEDs.
type LEDs [top.NumLEDs]bool

// String implements fmt.Stringer.
func (l LEDs) String() string {
	items := make([]string, len(l))
	for i, on := range l {
		state := "off"
		if on {
			state = "on"
		}
		items[i] = fmt.Sprintf("led%d=%s", i, state)
	}
	return strings.Join(items, " ")
}

// EventList is a list of recorded events.
type EventList []events.Event

type namedEvent struct {
	Type  string      `json:"type"`
	Event interface{} `json:"event"`
}

func eventName(ev events.Event) string {
	return reflect.Indirect(reflect.ValueOf(ev)).Type().Name()
}

// String implements fmt.Stringer.
func (l EventList) String() string {
	lines := make([]string, len(l))
	for i, ev := range l {
		if d, ok := ev.(events.Describer); ok {
			lines[i] = d.Describe()
		} else {
			lines[i] = eventName(ev) + " " + ev.Serializable().String()
		}
	}
	return strings.Join(lines, "\n")
}

// MarshalJSON implements json.Marshaler.
func (l EventList) MarshalJSON() ([]byte, error) {
	items := make([]namedEvent, len(l))
	for i, ev := range l {
		items[i] = namedEvent{Type: eventName(ev), Event: ev.Serializable()}
	}
	return json.Marshal(items)
}

// Status reports the current cycle.
func Status(sess *sh.Session, args []string) (interface{}, error) {
	return sess.Status(), nil
}

// Bytes reports the decoded bytes.
func Bytes(sess *sh.Session, args []string) (interface{}, error) {
	return Decoded(sess.Bytes()), nil
}

// LEDStates reports the LEDs.
func LEDStates(sess *sh.Session, args []string) (interface{}, error) {
	return LEDs(sess.Status().LEDs), nil
}

// Events reports recorded events, the last COUNT if specified.
func Events(sess *sh.Session, args []string) (interface{}, error) {
	evs := sess.Events()
	count, err := sh.ParseCycles(args, uint64(len(evs)))
	if err != nil {
		return nil, fmt.Errorf("invalid COUNT: %v", err)
	}
	if count < uint64(len(evs)) {
		evs = evs[uint64(len(evs))-count:]
	}
	return EventList(evs), nil
}

var (
	// StatusCmd prints the current cycle.
	StatusCmd = ishell.Cmd{
		Name:    "status",
		Aliases: []string{"st"},
		Help:    "",
		Func:    sh.OnSession(Status),
	}

	// BytesCmd prints the decoded bytes.
	BytesCmd = ishell.Cmd{
		Name:    "bytes",
		Aliases: []string{"b"},
		Help:    "",
		Func:    sh.OnSession(Bytes),
	}

	// LEDsCmd prints the LEDs.
	LEDsCmd = ishell.Cmd{
		Name: "leds",
		Help: "",
		Func: sh.OnSession(LEDStates),
	}

	// EventsCmd prints recorded events.
	EventsCmd = ishell.Cmd{
		Name:    "events",
		Aliases: []string{"ev"},
		Help:    "[COUNT]",
		Func:    sh.OnSession(Events),
	}
)

func init() {
	sh.AddCmds(
		&StatusCmd,
		&BytesCmd,
		&LEDsCmd,
		&EventsCmd,
	)
}
