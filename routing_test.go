package rf24mesh

import "testing"

// TestLogicalToPhysical_S3 exercises §8 scenario S3's routing step: node
// 0o011 sending to 0o1 ascends to its parent.
func TestLogicalToPhysical_S3(t *testing.T) {
	id := NewNodeIdentity(0o11)

	nextHop, pipe, multicast := id.LogicalToPhysical(0o1, TxNormal)
	if nextHop != 0o1 {
		t.Errorf("next hop = %#o, want 0o1", uint16(nextHop))
	}
	if pipe != 1 {
		t.Errorf("pipe = %d, want 1", pipe)
	}
	if multicast {
		t.Error("ascending to parent must not set the multicast flag")
	}
}

// TestLogicalToPhysical_S4 exercises S4's root-side and relay-side hops.
func TestLogicalToPhysical_S4(t *testing.T) {
	root := NewNodeIdentity(RootAddress)
	nextHop, pipe, _ := root.LogicalToPhysical(0o11, TxNormal)
	if nextHop != 0o1 || pipe != 5 {
		t.Errorf("root -> 0o11: next hop = %#o pipe %d, want 0o1 pipe 5", uint16(nextHop), pipe)
	}

	relay := NewNodeIdentity(0o1)
	nextHop, pipe, _ = relay.LogicalToPhysical(0o11, TxRouted)
	if nextHop != 0o11 || pipe != 5 {
		t.Errorf("relay -> 0o11: next hop = %#o pipe %d, want 0o11 pipe 5", uint16(nextHop), pipe)
	}
}

func TestLogicalToPhysical_ForcedModes(t *testing.T) {
	id := NewNodeIdentity(0o1)

	nextHop, pipe, multicast := id.LogicalToPhysical(0o22, TxToPhysical)
	if nextHop != 0o22 {
		t.Errorf("TxToPhysical next hop = %#o, want 0o22", uint16(nextHop))
	}
	if !multicast {
		t.Error("modes beyond TxRouted should report the multicast flag")
	}
	if pipe != id.ParentPipe%5 {
		t.Errorf("TxToPhysical pipe = %d, want %d", pipe, id.ParentPipe%5)
	}

	nextHop, pipe, _ = id.LogicalToPhysical(LevelToAddress(2), UserTxMulticast)
	if nextHop != LevelToAddress(2) {
		t.Errorf("multicast next hop = %#o, want %#o", uint16(nextHop), uint16(LevelToAddress(2)))
	}
	if pipe != 0 {
		t.Errorf("multicast pipe = %d, want 0", pipe)
	}
}
