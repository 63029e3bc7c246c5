package trace

import (
	"fmt"

	"github.com/golang/protobuf/proto"
)

// Kind classifies a decoded line.
type Kind int32

// Record kinds.
const (
	KindText Kind = iota
	KindDumpEntry
	KindDumpEnd
	KindOverflow
	KindEncodingError
	KindHalt

	kindCount
)

var kindNames = [kindCount]string{"text", "entry", "dump", "overflow", "encoding-error", "halt"}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int32(k))
}

// Record is one decoded line of a trace stream.
// Wire encoding is protobuf, field numbers are fixed.
type Record struct {
	Kind    Kind   `protobuf:"varint,1,opt,name=kind,proto3"`
	Text    string `protobuf:"bytes,2,opt,name=text,proto3"`
	Module  string `protobuf:"bytes,3,opt,name=module,proto3"`
	Line    uint32 `protobuf:"varint,4,opt,name=line,proto3"`
	Index   uint32 `protobuf:"varint,5,opt,name=index,proto3"`
	Value   uint32 `protobuf:"varint,6,opt,name=value,proto3"`
	Hex     bool   `protobuf:"varint,7,opt,name=hex,proto3"`
	Entries uint32 `protobuf:"varint,8,opt,name=entries,proto3"`

	// Origin, filled by the publisher.
	Source    string `protobuf:"bytes,9,opt,name=source,proto3"`
	Session   string `protobuf:"bytes,10,opt,name=session,proto3"`
	Timestamp int64  `protobuf:"varint,11,opt,name=timestamp,proto3"`
}

// Reset implements proto.Message.
func (r *Record) Reset() { *r = Record{} }

// String implements proto.Message.
func (r *Record) String() string { return proto.CompactTextString(r) }

// ProtoMessage implements proto.Message.
func (*Record) ProtoMessage() {}

// Encode encodes the record for the wire.
func (r *Record) Encode() ([]byte, error) {
	return proto.Marshal(r)
}

// DecodeRecord decodes a record from the wire.
func DecodeRecord(b []byte) (*Record, error) {
	r := &Record{}
	if err := proto.Unmarshal(b, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Summary formats the record for display.
func (r *Record) Summary() string {
	switch r.Kind {
	case KindDumpEntry:
		if r.Hex {
			return fmt.Sprintf("%s %d: 0x%02x", r.Kind, r.Index, r.Value)
		}
		return fmt.Sprintf("%s %d: %d", r.Kind, r.Index, r.Value)
	case KindDumpEnd:
		return fmt.Sprintf("%s %d entries", r.Kind, r.Entries)
	case KindOverflow:
		if r.Entries > 0 {
			return fmt.Sprintf("%s after %d entries: %q", r.Kind, r.Entries, r.Text)
		}
		return fmt.Sprintf("%s: %q", r.Kind, r.Text)
	case KindHalt:
		return fmt.Sprintf("%s %s at line %d", r.Kind, r.Module, r.Line)
	case KindEncodingError:
		return r.Kind.String()
	}
	return fmt.Sprintf("%s %q", r.Kind, r.Text)
}
