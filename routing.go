package rf24mesh

// SendMode selects how a frame's next hop is computed and whether the
// radio requests a per-hop auto-ACK.
type SendMode uint8

const (
	// TxNormal routes toward to_node by the ordinary ascend/descend rule.
	TxNormal SendMode = iota
	// TxRouted is like TxNormal, but the final hop is expected to emit an
	// end-to-end NetworkAck back to the origin.
	TxRouted
	// TxToPhysical sends directly to a caller-chosen physical next hop,
	// which is also the final destination.
	TxToPhysical
	// TxToLogical sends directly to a caller-chosen next hop that is not
	// the final destination (a forced relay).
	TxToLogical
	// UserTxMulticast sends a level-scoped multicast frame.
	UserTxMulticast
)

// LogicalToPhysical decides the next hop and pipe for a frame addressed to
// toNode under mode, and reports the multicast flag, which is set for every
// mode beyond TxRouted. It is a pure function of the node's own identity,
// shared by the send and receive pipelines. writeRaw does not use the flag:
// it requests no per-hop ACK for UserTxMulticast and TxToPhysical only.
func (n NodeIdentity) LogicalToPhysical(toNode Address, mode SendMode) (nextHop Address, pipe uint8, multicast bool) {
	switch {
	case mode > TxRouted:
		nextHop = toNode
		multicast = true
		if mode == UserTxMulticast {
			pipe = 0
		} else {
			pipe = n.ParentPipe % 5
		}

	case n.IsDirectChild(toNode):
		nextHop = toNode
		pipe = 5

	case n.IsDescendant(toNode):
		nextHop = n.DirectChildRouteTo(toNode)
		pipe = 5

	default:
		nextHop = n.ParentNode
		pipe = n.ParentPipe % 5
	}

	return nextHop, pipe, multicast
}
