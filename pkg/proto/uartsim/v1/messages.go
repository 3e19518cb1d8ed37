// Package v1 holds the wire messages declared in events.proto.
//
// The types are maintained by hand against the golang/protobuf v1 table
// marshaler: field numbers live in the struct tags, which must be kept in
// sync with events.proto. There is no file descriptor.
package v1

import proto "github.com/golang/protobuf/proto"

const _ = proto.ProtoPackageIsVersion3

// Typed wraps an encoded event with its type id.
type Typed struct {
	TypeId               uint32   `protobuf:"varint,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Message              []byte   `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Typed) Reset()         { *m = Typed{} }
func (m *Typed) String() string { return proto.CompactTextString(m) }
func (*Typed) ProtoMessage()    {}

func (m *Typed) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_Typed.Unmarshal(m, b)
}
func (m *Typed) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_Typed.Marshal(b, m, deterministic)
}
func (m *Typed) XXX_Merge(src proto.Message) {
	xxx_messageInfo_Typed.Merge(m, src)
}
func (m *Typed) XXX_Size() int {
	return xxx_messageInfo_Typed.Size(m)
}
func (m *Typed) XXX_DiscardUnknown() {
	xxx_messageInfo_Typed.DiscardUnknown(m)
}

var xxx_messageInfo_Typed proto.InternalMessageInfo

func (m *Typed) GetTypeId() uint32 {
	if m != nil {
		return m.TypeId
	}
	return 0
}

func (m *Typed) GetMessage() []byte {
	if m != nil {
		return m.Message
	}
	return nil
}

// ByteDecoded reports a frame recovered from the TX line.
type ByteDecoded struct {
	Cycle                uint64   `protobuf:"varint,1,opt,name=cycle,proto3" json:"cycle,omitempty"`
	Value                uint32   `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
	FramingError         bool     `protobuf:"varint,3,opt,name=framing_error,json=framingError,proto3" json:"framing_error,omitempty"`
	Index                uint32   `protobuf:"varint,4,opt,name=index,proto3" json:"index,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *ByteDecoded) Reset()         { *m = ByteDecoded{} }
func (m *ByteDecoded) String() string { return proto.CompactTextString(m) }
func (*ByteDecoded) ProtoMessage()    {}

func (m *ByteDecoded) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_ByteDecoded.Unmarshal(m, b)
}
func (m *ByteDecoded) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_ByteDecoded.Marshal(b, m, deterministic)
}
func (m *ByteDecoded) XXX_Merge(src proto.Message) {
	xxx_messageInfo_ByteDecoded.Merge(m, src)
}
func (m *ByteDecoded) XXX_Size() int {
	return xxx_messageInfo_ByteDecoded.Size(m)
}
func (m *ByteDecoded) XXX_DiscardUnknown() {
	xxx_messageInfo_ByteDecoded.DiscardUnknown(m)
}

var xxx_messageInfo_ByteDecoded proto.InternalMessageInfo

func (m *ByteDecoded) GetCycle() uint64 {
	if m != nil {
		return m.Cycle
	}
	return 0
}

func (m *ByteDecoded) GetValue() uint32 {
	if m != nil {
		return m.Value
	}
	return 0
}

func (m *ByteDecoded) GetFramingError() bool {
	if m != nil {
		return m.FramingError
	}
	return false
}

func (m *ByteDecoded) GetIndex() uint32 {
	if m != nil {
		return m.Index
	}
	return 0
}

// LedChanged reports a user LED transition.
type LedChanged struct {
	Cycle                uint64   `protobuf:"varint,1,opt,name=cycle,proto3" json:"cycle,omitempty"`
	Led                  uint32   `protobuf:"varint,2,opt,name=led,proto3" json:"led,omitempty"`
	On                   bool     `protobuf:"varint,3,opt,name=on,proto3" json:"on,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *LedChanged) Reset()         { *m = LedChanged{} }
func (m *LedChanged) String() string { return proto.CompactTextString(m) }
func (*LedChanged) ProtoMessage()    {}

func (m *LedChanged) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_LedChanged.Unmarshal(m, b)
}
func (m *LedChanged) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_LedChanged.Marshal(b, m, deterministic)
}
func (m *LedChanged) XXX_Merge(src proto.Message) {
	xxx_messageInfo_LedChanged.Merge(m, src)
}
func (m *LedChanged) XXX_Size() int {
	return xxx_messageInfo_LedChanged.Size(m)
}
func (m *LedChanged) XXX_DiscardUnknown() {
	xxx_messageInfo_LedChanged.DiscardUnknown(m)
}

var xxx_messageInfo_LedChanged proto.InternalMessageInfo

func (m *LedChanged) GetCycle() uint64 {
	if m != nil {
		return m.Cycle
	}
	return 0
}

func (m *LedChanged) GetLed() uint32 {
	if m != nil {
		return m.Led
	}
	return 0
}

func (m *LedChanged) GetOn() bool {
	if m != nil {
		return m.On
	}
	return false
}

// TransmitDone reports the message has been fully sent.
type TransmitDone struct {
	Cycle                uint64   `protobuf:"varint,1,opt,name=cycle,proto3" json:"cycle,omitempty"`
	Bytes                uint32   `protobuf:"varint,2,opt,name=bytes,proto3" json:"bytes,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *TransmitDone) Reset()         { *m = TransmitDone{} }
func (m *TransmitDone) String() string { return proto.CompactTextString(m) }
func (*TransmitDone) ProtoMessage()    {}

func (m *TransmitDone) XXX_Unmarshal(b []byte) error {
	return xxx_messageInfo_TransmitDone.Unmarshal(m, b)
}
func (m *TransmitDone) XXX_Marshal(b []byte, deterministic bool) ([]byte, error) {
	return xxx_messageInfo_TransmitDone.Marshal(b, m, deterministic)
}
func (m *TransmitDone) XXX_Merge(src proto.Message) {
	xxx_messageInfo_TransmitDone.Merge(m, src)
}
func (m *TransmitDone) XXX_Size() int {
	return xxx_messageInfo_TransmitDone.Size(m)
}
func (m *TransmitDone) XXX_DiscardUnknown() {
	xxx_messageInfo_TransmitDone.DiscardUnknown(m)
}

var xxx_messageInfo_TransmitDone proto.InternalMessageInfo

func (m *TransmitDone) GetCycle() uint64 {
	if m != nil {
		return m.Cycle
	}
	return 0
}

func (m *TransmitDone) GetBytes() uint32 {
	if m != nil {
		return m.Bytes
	}
	return 0
}

func init() {
	proto.RegisterType((*Typed)(nil), "uartsim.v1.Typed")
	proto.RegisterType((*ByteDecoded)(nil), "uartsim.v1.ByteDecoded")
	proto.RegisterType((*LedChanged)(nil), "uartsim.v1.LedChanged")
	proto.RegisterType((*TransmitDone)(nil), "uartsim.v1.TransmitDone")
}
