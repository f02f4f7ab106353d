// Package rf24mesh implements the logical addressing, routing and
// send/receive state machine of a tree-structured mesh network running
// over a point-to-point addressed packet radio (nRF24L01+ class).
//
// The package owns the hard engineering: octal tree addresses, the
// derivation of a node's mask and parent, hop-by-hop routing decisions,
// frame encoding and the bounded receive queue that decouples the radio
// from application consumers. Byte-level radio transmission is delegated
// to a Radio implementation supplied by the caller; see the radio
// subpackage for an in-memory Radio usable in tests and simulations.
package rf24mesh
