// radio.go
//go:generate mockgen -source=radio.go -destination=mock/radio_mock.go -package=mock_rf24mesh

package rf24mesh

import "time"

// PipeConfigurer is the subset of radio operations concerned with pipe
// addresses, channel and retry configuration. A Network uses it in New and
// whenever SetMulticastLevel runs; OpenWritingPipe is also called on every
// transmit.
type PipeConfigurer interface {
	SetChannel(channel uint8)
	SetRetries(delayMultiplier, count uint8)
	EnableDynamicAck()
	EnableDynamicPayloads()
	OpenReadingPipe(pipe uint8, address PipeAddress) error
	OpenWritingPipe(address PipeAddress) error
}

// Transceiver is the subset of radio operations Network drives on every
// send and poll cycle.
type Transceiver interface {
	IsValid() bool
	StartListening()
	StopListening()
	Available() bool
	DynamicPayloadSize() uint8
	Read(buf []byte) int
	WriteFast(frame []byte, noAck bool) bool
	TxStandby(timeout time.Duration) bool
}

// Radio is the full capability surface Network needs from an underlying
// transceiver. Implementations adapt a concrete driver (an nRF24L01+
// library, a test double, an in-memory medium) to this interface; Network
// itself never talks to hardware or a wire protocol directly.
type Radio interface {
	PipeConfigurer
	Transceiver
}
