package rf24mesh_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rf24go/rf24mesh"
	mock_rf24mesh "github.com/rf24go/rf24mesh/mock"
	"github.com/rf24go/rf24mesh/radio"
)

func TestNew_ConfiguresRadio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mock_rf24mesh.NewMockRadio(ctrl)
	r.EXPECT().IsValid().Return(true)
	r.EXPECT().SetChannel(uint8(90))
	r.EXPECT().EnableDynamicAck()
	r.EXPECT().EnableDynamicPayloads()
	r.EXPECT().SetRetries(gomock.Any(), uint8(5))
	for pipe := uint8(0); pipe <= rf24mesh.MaxPipe; pipe++ {
		r.EXPECT().OpenReadingPipe(pipe, rf24mesh.PipeAddressFor(0o1, pipe)).Return(nil)
	}
	r.EXPECT().StartListening()

	net, err := rf24mesh.New(r, 0o1, 90)
	require.NoError(t, err)
	assert.Equal(t, rf24mesh.Address(0o1), net.Address())
}

func TestNew_RejectsInvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mock_rf24mesh.NewMockRadio(ctrl)
	_, err := rf24mesh.New(r, 0o6, 90)
	assert.Error(t, err)
}

func TestNew_RejectsInvalidRadio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mock_rf24mesh.NewMockRadio(ctrl)
	r.EXPECT().IsValid().Return(false)

	_, err := rf24mesh.New(r, 0o1, 90)
	assert.Error(t, err)
}

// TestSend_InvalidDestination exercises §8 scenario S6: an invalid
// destination address must not touch the radio at all.
func TestSend_InvalidDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mock_rf24mesh.NewMockRadio(ctrl)
	r.EXPECT().IsValid().Return(true)
	r.EXPECT().SetChannel(gomock.Any())
	r.EXPECT().EnableDynamicAck()
	r.EXPECT().EnableDynamicPayloads()
	r.EXPECT().SetRetries(gomock.Any(), gomock.Any())
	r.EXPECT().OpenReadingPipe(gomock.Any(), gomock.Any()).Return(nil).Times(rf24mesh.MaxPipe + 1)
	r.EXPECT().StartListening()

	net, err := rf24mesh.New(r, 0o1, 90)
	require.NoError(t, err)

	ok := net.Send(net.NewHeader(0o6, 1), []byte("x"))
	assert.False(t, ok, "sending to an invalid address must fail")
}

func newTestNode(t *testing.T, medium *radio.Medium, addr rf24mesh.Address) *rf24mesh.Network {
	t.Helper()
	r := radio.NewLoopback(medium)
	net, err := rf24mesh.New(r, addr, 90, rf24mesh.WithTxTimeout(2*time.Millisecond))
	require.NoError(t, err)
	return net
}

// TestMeshChain_S3 reproduces §8 scenario S3: a send from a node to its own
// direct parent blocks for the full routed-ACK window and is reported as
// failed, even though the parent received and enqueued the payload, because
// TxNormal delivery never produces a NetworkAck.
func TestMeshChain_S3(t *testing.T) {
	medium := radio.NewMedium()
	parent := newTestNode(t, medium, 0o1)
	child := newTestNode(t, medium, 0o11)

	ok := child.Send(child.NewHeader(0o1, 1), []byte("hi"))
	assert.False(t, ok, "S3: TxNormal send to a direct parent must report failure (ACK timeout)")

	// The frame waits in the parent's radio until the parent polls.
	parent.Poll()
	assert.True(t, parent.Available(), "the parent must still have enqueued the payload")
	header, n, got := parent.Read(make([]byte, rf24mesh.MaxPayload))
	require.True(t, got)
	assert.Equal(t, rf24mesh.Address(0o11), header.FromNode)
	// Read copies the whole zero-padded payload area, not the 2 bytes sent.
	assert.EqualValues(t, rf24mesh.MaxPayload, n)
}

// TestMeshChain_S4 reproduces §8 scenario S4: a send from the root to a
// grandchild relays through the intermediate node with TxRouted, which
// emits an end-to-end NetworkAck back to the root.
func TestMeshChain_S4(t *testing.T) {
	medium := radio.NewMedium()
	root := newTestNode(t, medium, rf24mesh.RootAddress)
	relay := newTestNode(t, medium, 0o1)
	leaf := newTestNode(t, medium, 0o11)

	done := make(chan bool, 1)
	go func() {
		done <- root.Send(root.NewHeader(0o11, 1), []byte("hi"))
	}()

	// Drive the relay and leaf poll loops so the forwarded frame and the
	// reverse-path ACK actually move while root's Send busy-waits.
	deadline := time.After(time.Second)
	for {
		relay.Poll()
		leaf.Poll()
		select {
		case ok := <-done:
			assert.True(t, ok, "S4: routed delivery to a grandchild must succeed")
			return
		case <-deadline:
			t.Fatal("S4 did not complete before the test deadline")
		default:
		}
	}
}

// TestSend_LoopbackFastPath exercises the §4.F step 3 fast path: sending to
// one's own address never touches the radio.
func TestSend_LoopbackFastPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := mock_rf24mesh.NewMockRadio(ctrl)
	r.EXPECT().IsValid().Return(true)
	r.EXPECT().SetChannel(gomock.Any())
	r.EXPECT().EnableDynamicAck()
	r.EXPECT().EnableDynamicPayloads()
	r.EXPECT().SetRetries(gomock.Any(), gomock.Any())
	r.EXPECT().OpenReadingPipe(gomock.Any(), gomock.Any()).Return(nil).Times(rf24mesh.MaxPipe + 1)
	r.EXPECT().StartListening()

	net, err := rf24mesh.New(r, 0o1, 90)
	require.NoError(t, err)

	ok := net.Send(net.NewHeader(0o1, 1), []byte("self"))
	assert.True(t, ok)
	assert.True(t, net.Available())
}
