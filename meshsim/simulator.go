// Package meshsim wires several rf24mesh.Network instances to in-memory
// Loopback radios on one shared Medium, for integration tests and the
// meshmon demo CLI — a software bridge standing in for a room full of
// nRF24L01+ boards.
package meshsim

import (
	"fmt"

	"github.com/rf24go/rf24mesh"
	"github.com/rf24go/rf24mesh/radio"
)

// NodeStats is a point-in-time snapshot of one simulated node, enough to
// drive a routing table dashboard.
type NodeStats struct {
	Address    rf24mesh.Address
	Depth      int
	ParentNode rf24mesh.Address
	OK         uint64
	Fails      uint64
	QueueLen   int
}

// Simulator owns a shared Medium and one Network per address.
type Simulator struct {
	medium *radio.Medium
	nodes  map[rf24mesh.Address]*rf24mesh.Network
	order  []rf24mesh.Address
}

// New builds a Simulator with one node per address, all on channel and all
// sharing a fresh Medium.
func New(addrs []rf24mesh.Address, channel uint8, opts ...rf24mesh.Option) (*Simulator, error) {
	s := &Simulator{
		medium: radio.NewMedium(),
		nodes:  make(map[rf24mesh.Address]*rf24mesh.Network, len(addrs)),
	}

	for _, addr := range addrs {
		net, err := rf24mesh.New(radio.NewLoopback(s.medium), addr, channel, opts...)
		if err != nil {
			return nil, fmt.Errorf("meshsim: node %s: %w", rf24mesh.Describe(addr), err)
		}
		s.nodes[addr] = net
		s.order = append(s.order, addr)
	}

	return s, nil
}

// Node returns the Network for addr, or nil if no such node exists.
func (s *Simulator) Node(addr rf24mesh.Address) *rf24mesh.Network {
	return s.nodes[addr]
}

// Addresses returns the simulated node addresses in construction order.
func (s *Simulator) Addresses() []rf24mesh.Address {
	out := make([]rf24mesh.Address, len(s.order))
	copy(out, s.order)
	return out
}

// PollAll drains every node's radio once. Call this repeatedly from a
// driving loop (a test, a ticker) to move traffic through the mesh.
func (s *Simulator) PollAll() {
	for _, addr := range s.order {
		s.nodes[addr].Poll()
	}
}

// SendFrom has the node at from send header/payload, the way a single
// driving goroutine is expected to inject synthetic traffic: called from
// the same goroutine that calls PollAll, never concurrently with it. Every
// Network in this Simulator is single-owner (§5); a caller that wants
// background traffic generation must serialize it through its own driving
// loop rather than spawning a goroutine per send.
func (s *Simulator) SendFrom(from rf24mesh.Address, header rf24mesh.Header, payload []byte) bool {
	node := s.nodes[from]
	if node == nil {
		return false
	}
	return node.Send(header, payload)
}

// Stats snapshots every node's routing identity and counters.
func (s *Simulator) Stats() []NodeStats {
	stats := make([]NodeStats, 0, len(s.order))
	for _, addr := range s.order {
		n := s.nodes[addr]
		identity := n.Identity()
		fails, ok := n.Failures()

		stats = append(stats, NodeStats{
			Address:    addr,
			Depth:      identity.Depth,
			ParentNode: identity.ParentNode,
			OK:         ok,
			Fails:      fails,
			QueueLen:   n.QueueLen(),
		})
	}
	return stats
}
