// Package hybi03 implements the WebSocket framing codec for hybi draft 03.
//
// This package provides frame-level encoding and decoding for the draft 03
// wire format. It handles:
//   - Text and binary data frames
//   - Control frames (close, ping, pong)
//   - Fragmentation and continuation
//   - Payload masking
//   - Payload length encoding (7-bit, 16-bit, 64-bit)
//
// It performs no I/O: encoding turns an application message into frame
// bytes, and decoding consumes frames from an in-memory receive buffer fed
// by the caller's transport. Draft 03 differs from the final RFC 6455 wire
// format in its opcode table and in the meaning of the first-byte high bit;
// those constants live in the draft policy (see draft.go) so that sibling
// draft variants can share the codec skeleton.
//
// Draft reference: https://datatracker.ietf.org/doc/html/draft-ietf-hybi-thewebsocketprotocol-03
package hybi03

// FrameType identifies the semantic type of a frame or message.
//
// The numeric values are internal; the wire opcode for each type is draft
// specific and resolved through the draft policy table.
type FrameType uint8

const (
	// Continuation carries the next fragment of an in-progress message.
	// It is valid only on the wire, never as a caller-facing message type.
	Continuation FrameType = iota

	// Text is a data frame whose payload must be valid UTF-8 once the
	// message is fully reassembled.
	Text

	// Binary is a data frame carrying arbitrary bytes.
	Binary

	// Close is a control frame initiating the closing handshake.
	Close

	// Ping is a control frame used for keepalive probing.
	Ping

	// Pong is a control frame answering a ping.
	Pong
)

// IsControl reports whether the type is a control frame (close, ping, pong).
//
// Control frames must not be fragmented and their payload is capped at 125
// bytes.
func (t FrameType) IsControl() bool {
	return t == Close || t == Ping || t == Pong
}

// IsData reports whether the type is a data frame (text or binary).
//
// Data frames may be fragmented across continuation frames.
func (t FrameType) IsData() bool {
	return t == Text || t == Binary
}

// String returns the string representation of the frame type.
func (t FrameType) String() string {
	switch t {
	case Continuation:
		return "Continuation"
	case Text:
		return "Text"
	case Binary:
		return "Binary"
	case Close:
		return "Close"
	case Ping:
		return "Ping"
	case Pong:
		return "Pong"
	default:
		return "Unknown"
	}
}
