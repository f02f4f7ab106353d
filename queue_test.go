package rf24mesh

import (
	"strings"
	"testing"
)

func TestReceiveQueue_LIFOOrder(t *testing.T) {
	q := NewReceiveQueue(4)

	q.Enqueue(Header{ID: 1}, []byte("a"))
	q.Enqueue(Header{ID: 2}, []byte("b"))
	q.Enqueue(Header{ID: 3}, []byte("c"))

	buf := make([]byte, MaxPayload)

	// Read returns the whole MaxPayload-byte payload area, zero-padded.
	padded := func(s string) string { return s + strings.Repeat("\x00", MaxPayload-len(s)) }

	h, n, ok := q.Read(buf)
	if !ok || h.ID != 3 || string(buf[:n]) != padded("c") {
		t.Fatalf("first pop = id %d payload %q, want id 3 payload \"c\" (zero-padded)", h.ID, buf[:n])
	}

	h, n, ok = q.Read(buf)
	if !ok || h.ID != 2 || string(buf[:n]) != padded("b") {
		t.Fatalf("second pop = id %d payload %q, want id 2 payload \"b\" (zero-padded)", h.ID, buf[:n])
	}

	h, n, ok = q.Read(buf)
	if !ok || h.ID != 1 || string(buf[:n]) != padded("a") {
		t.Fatalf("third pop = id %d payload %q, want id 1 payload \"a\" (zero-padded)", h.ID, buf[:n])
	}

	if q.Available() {
		t.Error("queue should be empty after draining all frames")
	}
}

func TestReceiveQueue_DropsWhenFull(t *testing.T) {
	q := NewReceiveQueue(2)

	if !q.Enqueue(Header{ID: 1}, nil) {
		t.Fatal("first enqueue should succeed")
	}
	if !q.Enqueue(Header{ID: 2}, nil) {
		t.Fatal("second enqueue should succeed")
	}
	if q.Enqueue(Header{ID: 3}, nil) {
		t.Error("third enqueue should fail, queue is full")
	}
	if q.Len() != 2 {
		t.Errorf("Len() = %d, want 2", q.Len())
	}
}

func TestReceiveQueue_PeekDoesNotPop(t *testing.T) {
	q := NewReceiveQueue(2)
	q.Enqueue(Header{ID: 5}, []byte("x"))

	h, ok := q.Peek()
	if !ok || h.ID != 5 {
		t.Fatalf("Peek = %+v, ok=%v", h, ok)
	}
	if !q.Available() {
		t.Error("Peek must not remove the frame")
	}

	h2, _, ok := q.Read(make([]byte, 1))
	if !ok || h2.ID != 5 {
		t.Fatalf("Read after Peek = %+v, ok=%v", h2, ok)
	}
}

func TestReceiveQueue_ReadEmpty(t *testing.T) {
	q := NewReceiveQueue(1)
	if _, _, ok := q.Read(make([]byte, 1)); ok {
		t.Error("Read on empty queue should report ok=false")
	}
	if _, ok := q.Peek(); ok {
		t.Error("Peek on empty queue should report ok=false")
	}
}
