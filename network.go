package rf24mesh

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

const defaultQueueCapacity = 8

// Network is a single node's view of the mesh: its address, its radio, its
// receive queue and its send/receive state machine. A Network value is
// owned exclusively by whichever goroutine drives it — see §5 of the design
// for the single-threaded contract this type assumes.
type Network struct {
	radio    Radio
	identity NodeIdentity

	multicastEnabled bool
	multicastRelay   bool
	multicastLevel   int
	dedup            dedupTracker

	txTimeout    time.Duration
	routeTimeout time.Duration

	nextID uint16
	nOK    uint64
	nFails uint64

	queue *ReceiveQueue

	now func() time.Time
}

// Option configures a Network at construction time.
type Option func(*Network)

// WithTxTimeout overrides the per-hop transmit timeout (default 30ms). The
// routed-ACK timeout is always nine times this value.
func WithTxTimeout(d time.Duration) Option {
	return func(n *Network) { n.txTimeout = d }
}

// WithQueueCapacity overrides the receive queue's frame capacity (default
// 8 frames).
func WithQueueCapacity(frames int) Option {
	return func(n *Network) { n.queue = NewReceiveQueue(frames) }
}

// WithMulticast enables level-scoped multicast support. relay, if true,
// makes this node re-broadcast multicast frames it receives to the next
// level up, once per distinct id.
func WithMulticast(relay bool) Option {
	return func(n *Network) {
		n.multicastEnabled = true
		n.multicastRelay = relay
	}
}

// WithMulticastDedupWindow replaces the single-slot last-message-id dedup
// (the original implementation's behavior, and this package's default)
// with a small per-source table holding the last id seen from each of up
// to capacity distinct senders. This is a compatible upgrade noted as an
// open option by the design this package follows: it changes what
// "duplicate" means, not the call site that checks for it.
func WithMulticastDedupWindow(capacity int) Option {
	return func(n *Network) { n.dedup = newPerSourceDedup(capacity) }
}

// withClock overrides the time source; used by tests that need to control
// the routed-ACK timeout deterministically.
func withClock(now func() time.Time) Option {
	return func(n *Network) { n.now = now }
}

// New brings up a Network for node on channel, validating the address and
// configuring the radio's channel, dynamic ACK/payloads, retry jitter and
// listening pipes exactly as §4.A and §6 specify. It returns an error
// instead of silently no-opping when the address or radio is invalid, so
// callers can treat misconfiguration as the fatal error it is; Poll and
// Send still no-op defensively against a radio that later reports itself
// invalid.
func New(radio Radio, node Address, channel uint8, opts ...Option) (*Network, error) {
	if !IsValidAddress(node, false) {
		return nil, fmt.Errorf("rf24mesh: %#o is not a valid node address", uint16(node))
	}
	if radio == nil || !radio.IsValid() {
		return nil, errors.New("rf24mesh: radio is not valid")
	}

	identity := NewNodeIdentity(node)

	n := &Network{
		radio:          radio,
		identity:       identity,
		multicastLevel: identity.Depth,
		dedup:          &singleSlotDedup{},
		txTimeout:      30 * time.Millisecond,
		queue:          NewReceiveQueue(defaultQueueCapacity),
		nextID:         1,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(n)
	}
	n.routeTimeout = n.txTimeout * 9

	retryDelay := uint8(((uint16(node)%6)+1)*2 + 3)

	radio.SetChannel(channel)
	radio.EnableDynamicAck()
	radio.EnableDynamicPayloads()
	radio.SetRetries(retryDelay, 5)

	for pipe := uint8(0); pipe <= MaxPipe; pipe++ {
		if err := radio.OpenReadingPipe(pipe, PipeAddressFor(node, pipe)); err != nil {
			return nil, fmt.Errorf("rf24mesh: open reading pipe %d: %w", pipe, err)
		}
	}

	radio.StartListening()

	return n, nil
}

// Address returns this node's logical address.
func (n *Network) Address() Address { return n.identity.Address }

// Identity returns the derived mask/parent/depth state for this node.
func (n *Network) Identity() NodeIdentity { return n.identity }

// Failures returns the cumulative failure/success counts of Send and
// Multicast, counted once per call from its final outcome (after any
// end-to-end ACK wait). Sends to this node's own address and relayed frames
// are not counted.
func (n *Network) Failures() (fails, ok uint64) { return n.nFails, n.nOK }

// Available reports whether a received frame is waiting to be read.
func (n *Network) Available() bool { return n.queue.Available() }

// QueueLen reports how many frames are currently queued for this node.
func (n *Network) QueueLen() int { return n.queue.Len() }

// Peek returns the header of the most recently received frame without
// removing it from the queue.
func (n *Network) Peek() (Header, bool) { return n.queue.Peek() }

// Read pops the most recently received frame into payload.
func (n *Network) Read(payload []byte) (Header, int, bool) { return n.queue.Read(payload) }

// NewHeader stamps a fresh header addressed to, with a monotonically
// increasing id and the given application type. FromNode is filled in by
// Send.
func (n *Network) NewHeader(to Address, msgType MessageType) Header {
	id := n.nextID
	n.nextID++
	return Header{ToNode: to, ID: id, Type: msgType}
}

// Send delivers header and payload toward header.ToNode. If writeDirect is
// given, it overrides the next hop: writeDirect==header.ToNode sends
// directly to a known physical neighbor, otherwise it forces relay through
// an arbitrary next hop. Send returns false on an invalid address, a
// per-hop transmit failure, or — for TxNormal/forced-logical sends that
// left the origin — a routed-ACK timeout.
func (n *Network) Send(header Header, payload []byte, writeDirect ...Address) bool {
	return n.sendContext(context.Background(), header, payload, writeDirect...)
}

// SendContext is Send with an additional cancellation path for the
// end-to-end ACK wait: a canceled ctx stops the busy-wait early and
// reports failure, the same as a routeTimeout expiry would. It does not
// change the protocol's own timeout semantics.
func (n *Network) SendContext(ctx context.Context, header Header, payload []byte, writeDirect ...Address) bool {
	return n.sendContext(ctx, header, payload, writeDirect...)
}

func (n *Network) sendContext(ctx context.Context, header Header, payload []byte, writeDirect ...Address) bool {
	header.FromNode = n.identity.Address

	if header.ToNode == n.identity.Address {
		n.queue.Enqueue(header, payload)
		return true
	}

	frame, err := Encode(header, payload)
	if err != nil {
		return false
	}

	mode := TxNormal
	effectiveTo := header.ToNode
	if len(writeDirect) > 0 {
		wd := writeDirect[0]
		if wd == header.ToNode {
			mode = TxToPhysical
		} else {
			mode = TxToLogical
			effectiveTo = wd
		}
	}

	ok, _ := n.writeRaw(frame, effectiveTo, header, mode)

	// TxNormal and TxToLogical sends never learn they reached the final
	// destination from the per-hop transmit alone — only a TxRouted hop
	// emits a NetworkAck — so both always wait here, even when the first
	// hop happens to land exactly on to_node (a direct send to one's own
	// parent blocks for the full routeTimeout and reports failure despite
	// arriving; only relayed TxRouted delivery produces a real ACK).
	if ok && (mode == TxNormal || mode == TxToLogical) {
		ok = n.awaitNetworkAck(ctx)
	}

	if ok {
		n.nOK++
	} else {
		n.nFails++
	}

	return ok
}

// Multicast sends header and payload to the reserved multicast address,
// rendezvousing at the pipe opened by nodes listening at level. There is
// no per-hop ACK for multicast traffic.
func (n *Network) Multicast(header Header, payload []byte, level int) bool {
	header.FromNode = n.identity.Address
	header.ToNode = MulticastAddress

	frame, err := Encode(header, payload)
	if err != nil {
		return false
	}

	ok, _ := n.writeRaw(frame, LevelToAddress(level), header, UserTxMulticast)
	if ok {
		n.nOK++
	} else {
		n.nFails++
	}
	return ok
}

// SetMulticastLevel reopens this node's listening pipe 0 at the rendezvous
// address for level, and records level as this node's own multicast level
// (used when relaying received multicast frames up one level).
func (n *Network) SetMulticastLevel(level int) error {
	n.multicastLevel = level
	return n.radio.OpenReadingPipe(0, multicastPipeAddress(level))
}

// writeRaw performs the per-hop transmit for frame: it validates
// effectiveTo and the radio, asks the routing engine for a next hop and
// pipe (multicast frames go to the level-scoped multicast pipe address that
// SetMulticastLevel listens on), and drives
// the radio through stop-listening / open-write / write / tx-standby /
// resume-listening. When mode is TxRouted, the transmit succeeded, and the
// next hop is the frame's own final destination, it also emits a
// NetworkAck back along the reverse path — but only then; TxNormal sends
// that happen to land on an ancestor do not produce one (§4.F design
// note).
//
// writeRaw never touches the nOK/nFails counters itself, matching
// RF24Network.cpp's write(), which updates them exactly once, at the end,
// based on the final outcome after any end-to-end ACK wait — not per hop.
// sendContext and Multicast own that single update; the routed-ACK reply
// writeRaw issues from here is internal plumbing and is never counted.
func (n *Network) writeRaw(frame []byte, effectiveTo Address, header Header, mode SendMode) (ok bool, nextHop Address) {
	if !IsValidAddress(effectiveTo, n.multicastEnabled) || !n.radio.IsValid() {
		return false, 0
	}

	nextHop, pipe, _ := n.identity.LogicalToPhysical(effectiveTo, mode)
	noAck := mode == UserTxMulticast || mode == TxToPhysical

	writeAddr := PipeAddressFor(nextHop, pipe)
	if mode == UserTxMulticast {
		writeAddr = multicastPipeAddress(Depth(nextHop))
	}

	n.radio.StopListening()
	if err := n.radio.OpenWritingPipe(writeAddr); err != nil {
		n.radio.StartListening()
		return false, nextHop
	}

	txOK := n.radio.WriteFast(frame, noAck)
	if txOK {
		txOK = n.radio.TxStandby(n.txTimeout)
	}

	if mode == TxRouted && txOK && nextHop == effectiveTo && header.Type != NetworkAck {
		n.sendRoutedAck(header)
	}

	n.radio.StartListening()

	return txOK, nextHop
}

// sendRoutedAck composes and transmits the end-to-end NetworkAck for a
// frame that just completed its final TxRouted hop. Its own transmit
// outcome is not counted — it is a protocol reply, not a user send.
func (n *Network) sendRoutedAck(original Header) {
	ack := Header{
		FromNode: n.identity.Address,
		ToNode:   original.FromNode,
		ID:       original.ID,
		Type:     NetworkAck,
	}

	frame, err := Encode(ack, nil)
	if err != nil {
		return
	}

	n.writeRaw(frame, ack.ToNode, ack, TxRouted)
}

// awaitNetworkAck busy-polls the receive pipeline until a NetworkAck
// destined for this node is observed, ctx is canceled, or routeTimeout
// elapses. Driving Poll in a tight loop here is deliberate (§5): forwarded
// and foreign traffic must keep moving while this node waits for its own
// ACK.
func (n *Network) awaitNetworkAck(ctx context.Context) bool {
	deadline := n.now().Add(n.routeTimeout)

	for {
		if n.Poll() == uint8(NetworkAck) {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		default:
		}

		if n.now().After(deadline) {
			return false
		}
	}
}

// Poll drains every frame currently available on the radio. It returns
// uint8(NetworkAck) if a self-destined NetworkAck was observed during the
// drain (the signal Send's ACK wait looks for), or 0 otherwise.
func (n *Network) Poll() uint8 {
	return n.PollN(math.MaxInt32)
}

// PollN is Poll bounded to at most maxFrames frames, so a burst of
// forwarded traffic cannot starve the caller's own event loop.
func (n *Network) PollN(maxFrames int) uint8 {
	var lastAck uint8

	if !n.radio.IsValid() {
		return 0
	}

	buf := make([]byte, FrameSize)

	for count := 0; count < maxFrames && n.radio.Available(); count++ {
		size := int(n.radio.DynamicPayloadSize())
		if size <= 0 || size > FrameSize {
			size = FrameSize
		}

		got := n.radio.Read(buf[:size])
		if got < HeaderSize {
			continue
		}

		header, payload, err := Decode(buf[:got])
		if err != nil {
			continue
		}

		if !IsValidAddress(header.ToNode, n.multicastEnabled) {
			continue
		}

		switch {
		case header.ToNode == n.identity.Address:
			if header.Type == NetworkAck {
				lastAck = uint8(NetworkAck)
				continue
			}
			n.queue.Enqueue(header, payload)

		case n.multicastEnabled && header.ToNode == MulticastAddress:
			if n.dedup.seen(header.FromNode, header.ID) {
				continue
			}
			n.dedup.record(header.FromNode, header.ID)
			n.queue.Enqueue(header, payload)

			if n.multicastRelay {
				if relayFrame, err := Encode(header, payload); err == nil {
					n.writeRaw(relayFrame, LevelToAddress(n.multicastLevel+1), header, UserTxMulticast)
				}
			}

		default:
			if relayFrame, err := Encode(header, payload); err == nil {
				n.writeRaw(relayFrame, header.ToNode, header, TxRouted)
			}
		}
	}

	return lastAck
}

// dedupTracker decides whether a multicast (from, id) pair has been seen
// before. The default singleSlotDedup matches the original implementation
// byte-for-byte; WithMulticastDedupWindow swaps in a wider table.
type dedupTracker interface {
	seen(from Address, id uint16) bool
	record(from Address, id uint16)
}

// singleSlotDedup is a single lastMultiMessageID slot: it only dedups a
// burst from one sender at a time, matching §9's documented limitation.
type singleSlotDedup struct {
	lastID uint16
	seenAt bool
}

func (d *singleSlotDedup) seen(_ Address, id uint16) bool {
	return d.seenAt && d.lastID == id
}

func (d *singleSlotDedup) record(_ Address, id uint16) {
	d.lastID = id
	d.seenAt = true
}

// perSourceDedup keeps the last id seen from each of up to capacity
// distinct senders, evicting the oldest sender once full.
type perSourceDedup struct {
	capacity int
	lastID   map[Address]uint16
	order    []Address
}

func newPerSourceDedup(capacity int) *perSourceDedup {
	return &perSourceDedup{capacity: capacity, lastID: make(map[Address]uint16)}
}

func (d *perSourceDedup) seen(from Address, id uint16) bool {
	last, ok := d.lastID[from]
	return ok && last == id
}

func (d *perSourceDedup) record(from Address, id uint16) {
	if _, exists := d.lastID[from]; !exists {
		d.order = append(d.order, from)
		if len(d.order) > d.capacity {
			oldest := d.order[0]
			d.order = d.order[1:]
			delete(d.lastID, oldest)
		}
	}
	d.lastID[from] = id
}
