// Package events defines the observations published about a running
// simulation, and their wire encoding.
package events

import (
	"fmt"

	"github.com/golang/protobuf/proto"

	pb "github.com/robotalks/uartsim/pkg/proto/uartsim/v1"
)

// Event is an observation that can be serialized over the wire.
type Event interface {
	TypeID() uint32
	Serializable() proto.Message
	NewEvent() Event
}

// TypeID Groups
const (
	GroupUART   uint32 = 0x00010000
	GroupLED    uint32 = 0x00020000
	GroupCustom uint32 = 0x7f000000 // base group id for custom events.
)

// TypeIDs
const (
	ByteDecodedTypeID  uint32 = TypeIDKindEvent | GroupUART | 0x0000
	TransmitDoneTypeID uint32 = TypeIDKindEvent | GroupUART | 0x0001
	LedChangedTypeID   uint32 = TypeIDKindEvent | GroupLED | 0x0000
)

// ByteDecoded is emitted when a frame is recovered from the TX line.
type ByteDecoded struct {
	pb.ByteDecoded
}

// TypeID implements Event.
func (e *ByteDecoded) TypeID() uint32 { return ByteDecodedTypeID }

// Serializable implements Event.
func (e *ByteDecoded) Serializable() proto.Message { return &e.ByteDecoded }

// NewEvent implements Event.
func (e *ByteDecoded) NewEvent() Event { return &ByteDecoded{} }

// Byte returns the decoded value.
func (e *ByteDecoded) Byte() byte { return byte(e.Value) }

// Describe renders the event for humans.
func (e *ByteDecoded) Describe() string {
	if e.FramingError {
		return fmt.Sprintf("cycle %d: byte %d %q (framing error)", e.Cycle, e.Index, e.Byte())
	}
	return fmt.Sprintf("cycle %d: byte %d %q", e.Cycle, e.Index, e.Byte())
}

// LedChanged is emitted when a user LED turns on or off.
type LedChanged struct {
	pb.LedChanged
}

// TypeID implements Event.
func (e *LedChanged) TypeID() uint32 { return LedChangedTypeID }

// Serializable implements Event.
func (e *LedChanged) Serializable() proto.Message { return &e.LedChanged }

// NewEvent implements Event.
func (e *LedChanged) NewEvent() Event { return &LedChanged{} }

// Describe renders the event for humans.
func (e *LedChanged) Describe() string {
	state := "off"
	if e.On {
		state = "on"
	}
	return fmt.Sprintf("cycle %d: led %d %s", e.Cycle, e.Led, state)
}

// TransmitDone is emitted once the whole message has been sent.
type TransmitDone struct {
	pb.TransmitDone
}

// TypeID implements Event.
func (e *TransmitDone) TypeID() uint32 { return TransmitDoneTypeID }

// Serializable implements Event.
func (e *TransmitDone) Serializable() proto.Message { return &e.TransmitDone }

// NewEvent implements Event.
func (e *TransmitDone) NewEvent() Event { return &TransmitDone{} }

// Describe renders the event for humans.
func (e *TransmitDone) Describe() string {
	return fmt.Sprintf("cycle %d: transmit done, %d bytes", e.Cycle, e.Bytes)
}

// Describer is implemented by events with a human readable form.
type Describer interface {
	Describe() string
}
