package meshnode

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/rf24go/rf24mesh"
)

// RunState mirrors the teacher's FilterState enum (driver.FilterState):
// a node only accepts Start from Stopped and Stop from Starting or Running.
type RunState int

const (
	StateStopped RunState = iota
	StateStarting
	StateRunning
	StateStopping
)

func (s RunState) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// ReceiveFunc handles one frame drained from a Node's receive queue.
// payload is a private copy safe to retain past the call.
type ReceiveFunc func(header rf24mesh.Header, payload []byte)

// Node owns one rf24mesh.Network and drives its Poll loop on a dedicated
// goroutine, satisfying the single-owner contract the network layer
// assumes: nothing else may call into the embedded Network concurrently
// once Start has been called.
type Node struct {
	*rf24mesh.Network

	logger   *log.Logger
	onRecv   ReceiveFunc
	interval time.Duration

	mu     sync.Mutex
	state  RunState
	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewNode validates cfg, brings up a Network on radio, and returns a Node
// ready for Start. logger may be nil, in which case a default logger
// writing to stderr is used.
func NewNode(radio rf24mesh.Radio, cfg NodeConfig, onRecv ReceiveFunc, logger *log.Logger, opts ...rf24mesh.Option) (*Node, error) {
	addr, err := cfg.ParseAddress()
	if err != nil {
		return nil, err
	}

	if cfg.MulticastLevel != nil {
		opts = append(opts, rf24mesh.WithMulticast(cfg.MulticastRelay))
	}

	net, err := rf24mesh.New(radio, addr, cfg.Channel, opts...)
	if err != nil {
		return nil, fmt.Errorf("meshnode: %w", err)
	}

	if cfg.MulticastLevel != nil {
		if err := net.SetMulticastLevel(*cfg.MulticastLevel); err != nil {
			return nil, fmt.Errorf("meshnode: set multicast level: %w", err)
		}
	}

	if logger == nil {
		logger = log.New(os.Stderr, fmt.Sprintf("[%s] ", cfg.Name), log.LstdFlags)
	}

	return &Node{
		Network:  net,
		logger:   logger,
		onRecv:   onRecv,
		interval: 5 * time.Millisecond,
	}, nil
}

// Start begins the poll loop on a new goroutine. It returns an error if
// the node is not currently stopped.
func (n *Node) Start() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.state != StateStopped {
		return errors.New("meshnode: node is not stopped")
	}

	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.state = StateStarting

	n.wg.Add(1)
	go n.pollLoop(ctx)

	return nil
}

// Stop cancels the poll loop and waits for it to exit.
func (n *Node) Stop() {
	n.mu.Lock()
	if n.state != StateRunning && n.state != StateStarting {
		n.mu.Unlock()
		return
	}
	n.state = StateStopping
	cancel := n.cancel
	n.mu.Unlock()

	cancel()
	n.wg.Wait()

	n.mu.Lock()
	n.state = StateStopped
	n.mu.Unlock()
}

// State reports the node's current run state.
func (n *Node) State() RunState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

func (n *Node) pollLoop(ctx context.Context) {
	defer n.wg.Done()

	n.mu.Lock()
	n.state = StateRunning
	n.mu.Unlock()

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.Network.PollN(32)
			n.drain()
		}
	}
}

func (n *Node) drain() {
	buf := make([]byte, rf24mesh.MaxPayload)
	for n.Network.Available() {
		header, size, ok := n.Network.Read(buf)
		if !ok {
			return
		}

		if n.onRecv != nil {
			payload := make([]byte, size)
			copy(payload, buf[:size])
			n.onRecv(header, payload)
			continue
		}

		n.logger.Printf("received %s payload=%q", header, buf[:size])
	}
}
