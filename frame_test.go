package rf24mesh

import (
	"bytes"
	"testing"
)

func TestEncodeDecodeHeader(t *testing.T) {
	h := Header{FromNode: 0o11, ToNode: 0o1, ID: 42, Type: 7, Reserved: 0}
	buf := EncodeHeader(h)

	got, err := DecodeHeader(buf[:])
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if got != h {
		t.Errorf("round trip = %+v, want %+v", got, h)
	}
}

func TestDecodeHeader_ShortBuffer(t *testing.T) {
	if _, err := DecodeHeader(make([]byte, HeaderSize-1)); err == nil {
		t.Error("expected error decoding short header")
	}
}

func TestEncode_RejectsOversizedPayload(t *testing.T) {
	_, err := Encode(Header{}, make([]byte, MaxPayload+1))
	if err == nil {
		t.Error("expected error for oversized payload")
	}
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	h := Header{FromNode: 0o1, ToNode: 0o11, ID: 9, Type: 3}
	payload := []byte("hi")

	frame, err := Encode(h, payload)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(frame) != HeaderSize+len(payload) {
		t.Fatalf("frame length = %d, want %d", len(frame), HeaderSize+len(payload))
	}

	gotHeader, gotPayload, err := Decode(frame)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if gotHeader != h {
		t.Errorf("header = %+v, want %+v", gotHeader, h)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Errorf("payload = %q, want %q", gotPayload, payload)
	}
}
