package events

import (
	"fmt"

	"github.com/golang/protobuf/proto"

	pb "github.com/robotalks/uartsim/pkg/proto/uartsim/v1"
)

// TypeID masks
const (
	TypeIDMaskKind  uint32 = 0x80000000
	TypeIDMaskGroup uint32 = 0x7fff0000
	TypeIDMaskID    uint32 = 0x0000ffff
)

// Event Kinds
const (
	TypeIDKindCommand uint32 = 0x00000000
	TypeIDKindEvent   uint32 = 0x80000000
)

// Typed wraps an event with type information.
type Typed struct {
	pb.Typed
}

// ErrUnknownType indicates unknown type id.
type ErrUnknownType struct {
	TypeID uint32
}

// Error implements error.
func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %x", e.TypeID)
}

// EventTypes are predefined mapping of type ID to events.
var EventTypes = map[uint32]Event{
	ByteDecodedTypeID:  (*ByteDecoded)(nil),
	LedChangedTypeID:   (*LedChanged)(nil),
	TransmitDoneTypeID: (*TransmitDone)(nil),
}

// TypedFrom creates a Typed from an event.
func TypedFrom(ev Event) (*Typed, error) {
	data, err := proto.Marshal(ev.Serializable())
	if err != nil {
		return nil, err
	}
	return &Typed{Typed: pb.Typed{TypeId: ev.TypeID(), Message: data}}, nil
}

// Decode decodes the packet into actual event.
func (p Typed) Decode() (Event, error) {
	evType, ok := EventTypes[p.TypeId]
	if !ok {
		return nil, &ErrUnknownType{TypeID: p.TypeId}
	}
	ev := evType.NewEvent()
	if err := proto.Unmarshal(p.Message, ev.Serializable()); err != nil {
		return nil, err
	}
	return ev, nil
}

// Encode encodes the Typed to bytes.
func (p Typed) Encode() ([]byte, error) {
	return proto.Marshal(&p.Typed)
}

// Kind gets event kind from type ID.
func (p Typed) Kind() uint32 {
	return p.TypeId & TypeIDMaskKind
}

// IsEvent determines if the payload is an event.
func (p Typed) IsEvent() bool {
	return p.Kind() == TypeIDKindEvent
}

// DecodeTyped decodes bytes into Typed.
func DecodeTyped(data []byte) (*Typed, error) {
	var typed Typed
	if err := proto.Unmarshal(data, &typed.Typed); err != nil {
		return nil, err
	}
	return &typed, nil
}

// Marshal encodes an event into the wire form of its Typed envelope.
func Marshal(ev Event) ([]byte, error) {
	typed, err := TypedFrom(ev)
	if err != nil {
		return nil, err
	}
	return typed.Encode()
}

// Unmarshal decodes the wire form produced by Marshal.
func Unmarshal(data []byte) (Event, error) {
	typed, err := DecodeTyped(data)
	if err != nil {
		return nil, err
	}
	return typed.Decode()
}
