// Package radio provides Radio implementations that don't need real
// nRF24L01+ hardware: Loopback nodes attached to a shared Medium, useful for
// tests and for simulating a mesh topology in a single process.
package radio

import (
	"fmt"
	"sync"
	"time"

	"github.com/rf24go/rf24mesh"
)

// Medium is a shared in-memory broadcast bus keyed by pipe address. Every
// Loopback radio attached to the same Medium can reach every other one, the
// way every node on an nRF24L01+ channel can hear every other transmission;
// routing, not the medium, decides who actually listens.
type Medium struct {
	mu    sync.Mutex
	pipes map[[5]byte][]*Loopback
}

// NewMedium returns an empty shared medium.
func NewMedium() *Medium {
	return &Medium{pipes: make(map[[5]byte][]*Loopback)}
}

func (m *Medium) subscribe(addr rf24mesh.PipeAddress, l *Loopback) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := [5]byte(addr)
	for _, existing := range m.pipes[key] {
		if existing == l {
			return
		}
	}
	m.pipes[key] = append(m.pipes[key], l)
}

func (m *Medium) unsubscribe(addr rf24mesh.PipeAddress, l *Loopback) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := [5]byte(addr)
	subs := m.pipes[key]
	for i, existing := range subs {
		if existing == l {
			m.pipes[key] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

func (m *Medium) deliver(addr rf24mesh.PipeAddress, frame []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	subs := m.pipes[[5]byte(addr)]
	if len(subs) == 0 {
		return false
	}

	for _, s := range subs {
		s.enqueue(frame)
	}
	return true
}

// Loopback is a Radio backed by a Medium instead of hardware. Delivery is
// synchronous and reliable: WriteFast always succeeds if at least one
// listener is subscribed to the destination pipe, and TxStandby never has
// anything to wait for. This makes it suitable for exercising routing and
// ACK logic without timing noise, not for modeling lossy-air behavior.
type Loopback struct {
	medium *Medium

	mu          sync.Mutex
	valid       bool
	listening   bool
	readPipes   [rf24mesh.MaxPipe + 1]rf24mesh.PipeAddress
	readEnabled [rf24mesh.MaxPipe + 1]bool
	writePipe   rf24mesh.PipeAddress
	inbox       [][]byte
	dynamic     bool
}

// NewLoopback attaches a new Radio to medium. It starts valid and not
// listening, matching a freshly powered-up transceiver before Network.New
// configures it.
func NewLoopback(medium *Medium) *Loopback {
	return &Loopback{medium: medium, valid: true}
}

// SetValid lets tests simulate a radio going offline; Network.Poll and the
// send path treat an invalid radio as a no-op rather than an error.
func (l *Loopback) SetValid(valid bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.valid = valid
}

func (l *Loopback) enqueue(frame []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inbox = append(l.inbox, frame)
}

func (l *Loopback) SetChannel(uint8)          {}
func (l *Loopback) SetRetries(uint8, uint8)   {}
func (l *Loopback) EnableDynamicAck()         {}
func (l *Loopback) EnableDynamicPayloads()    { l.mu.Lock(); l.dynamic = true; l.mu.Unlock() }

func (l *Loopback) OpenReadingPipe(pipe uint8, address rf24mesh.PipeAddress) error {
	if pipe > rf24mesh.MaxPipe {
		return fmt.Errorf("radio: pipe %d out of range", pipe)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.readEnabled[pipe] {
		l.medium.unsubscribe(l.readPipes[pipe], l)
	}
	l.readPipes[pipe] = address
	l.readEnabled[pipe] = true
	if l.listening {
		l.medium.subscribe(address, l)
	}
	return nil
}

func (l *Loopback) OpenWritingPipe(address rf24mesh.PipeAddress) error {
	l.mu.Lock()
	l.writePipe = address
	l.mu.Unlock()
	return nil
}

func (l *Loopback) IsValid() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.valid
}

func (l *Loopback) StartListening() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.listening {
		return
	}
	l.listening = true
	for pipe, on := range l.readEnabled {
		if on {
			l.medium.subscribe(l.readPipes[pipe], l)
		}
	}
}

func (l *Loopback) StopListening() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.listening {
		return
	}
	l.listening = false
	for pipe, on := range l.readEnabled {
		if on {
			l.medium.unsubscribe(l.readPipes[pipe], l)
		}
	}
}

func (l *Loopback) Available() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.inbox) > 0
}

func (l *Loopback) DynamicPayloadSize() uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.inbox) == 0 {
		return 0
	}
	return uint8(len(l.inbox[0]))
}

func (l *Loopback) Read(buf []byte) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.inbox) == 0 {
		return 0
	}
	frame := l.inbox[0]
	l.inbox = l.inbox[1:]
	return copy(buf, frame)
}

func (l *Loopback) WriteFast(frame []byte, _ bool) bool {
	l.mu.Lock()
	dest := l.writePipe
	l.mu.Unlock()

	cp := make([]byte, len(frame))
	copy(cp, frame)
	return l.medium.deliver(dest, cp)
}

func (l *Loopback) TxStandby(time.Duration) bool {
	return true
}
