package rf24mesh

import (
	"encoding/binary"
	"fmt"
)

const (
	// HeaderSize is the fixed, wire-exact size of a frame header.
	HeaderSize = 8

	// MaxPayload is the largest payload a frame may carry. Header plus
	// payload must fit in the radio's maximum payload size (32 bytes).
	MaxPayload = 24

	// FrameSize is the fixed stride used for every enqueued frame,
	// regardless of the actual payload length, so the receive queue can
	// use constant-stride arithmetic.
	FrameSize = HeaderSize + MaxPayload
)

// NetworkAck is the reserved header Type value meaning "this frame is an
// end-to-end acknowledgement of a routed send", disjoint from any
// application-defined type.
const NetworkAck MessageType = 193

// MessageType is an application-defined frame kind, with NetworkAck
// reserved by this layer.
type MessageType uint8

// Header is the 8-byte frame header, in the exact field order and width it
// is serialized with.
type Header struct {
	FromNode Address
	ToNode   Address
	ID       uint16
	Type     MessageType
	Reserved uint8
}

func (h Header) String() string {
	return fmt.Sprintf("%#04o->%#04o id=%d type=%d", uint16(h.FromNode), uint16(h.ToNode), h.ID, h.Type)
}

// EncodeHeader packs h into its 8-byte little-endian wire form.
func EncodeHeader(h Header) [HeaderSize]byte {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint16(buf[0:2], uint16(h.FromNode))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(h.ToNode))
	binary.LittleEndian.PutUint16(buf[4:6], h.ID)
	buf[6] = byte(h.Type)
	buf[7] = h.Reserved
	return buf
}

// DecodeHeader unpacks an 8-byte wire header. It rejects buffers shorter
// than HeaderSize.
func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, fmt.Errorf("rf24mesh: header needs %d bytes, got %d", HeaderSize, len(buf))
	}
	return Header{
		FromNode: Address(binary.LittleEndian.Uint16(buf[0:2])),
		ToNode:   Address(binary.LittleEndian.Uint16(buf[2:4])),
		ID:       binary.LittleEndian.Uint16(buf[4:6]),
		Type:     MessageType(buf[6]),
		Reserved: buf[7],
	}, nil
}

// Encode packs header and payload into a frame: header followed by
// payload, total length HeaderSize+len(payload). It rejects payloads
// longer than MaxPayload.
func Encode(header Header, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("rf24mesh: payload of %d bytes exceeds MaxPayload (%d)", len(payload), MaxPayload)
	}

	frame := make([]byte, HeaderSize+len(payload))
	hdr := EncodeHeader(header)
	copy(frame, hdr[:])
	copy(frame[HeaderSize:], payload)
	return frame, nil
}

// Decode splits a wire frame into its header and payload view. The
// returned payload aliases buf; callers that retain it beyond the next
// mutation of buf must copy it.
func Decode(buf []byte) (Header, []byte, error) {
	header, err := DecodeHeader(buf)
	if err != nil {
		return Header{}, nil, err
	}
	return header, buf[HeaderSize:], nil
}
