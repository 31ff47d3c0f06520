package hybi03

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// defaultMaxFrameSize caps the total length of a single frame (header,
// masking key and payload) when the caller does not configure a limit.
const defaultMaxFrameSize = 32 * 1024 * 1024

// Message is a decoded application message.
//
// Payload is fully reassembled: for a fragmented message it is the
// concatenation of all fragment payloads. A Message with Type Text has
// already passed UTF-8 validation.
type Message struct {
	Type    FrameType
	Payload []byte
}

// Decoder turns an incoming byte stream into application messages.
//
// The decoder owns a receive buffer and the fragmentation state of one
// connection. The transport appends raw bytes with Write and then calls
// Decode until it reports that no complete message is buffered. A Decoder
// must not be shared between goroutines; connections decoded concurrently
// each own an independent Decoder.
type Decoder struct {
	d            *draft
	maxFrameSize int

	// buf is the receive buffer; frames are consumed from the front.
	buf []byte

	// pending is the reassembly buffer of the in-progress fragmented
	// message, nil while none is pending. pendingType is meaningful only
	// while pending is non-nil.
	pending     []byte
	pendingType FrameType
}

// NewDecoder returns a decoder enforcing the given maximum total frame
// size. A maxFrameSize of zero or below selects the default (32 MiB).
//
// The limit bounds memory growth from a single oversized frame. It does not
// bound the reassembly buffer across an unbounded sequence of fragments;
// callers needing that impose their own cap on top.
func NewDecoder(maxFrameSize int) *Decoder {
	if maxFrameSize <= 0 {
		maxFrameSize = defaultMaxFrameSize
	}
	return &Decoder{d: draft03, maxFrameSize: maxFrameSize}
}

// Write appends raw bytes from the transport to the receive buffer. It
// always succeeds; it implements io.Writer so a transport can copy into the
// decoder directly.
func (dec *Decoder) Write(p []byte) (int, error) {
	dec.buf = append(dec.buf, p...)
	return len(p), nil
}

// Buffered reports the number of bytes awaiting decoding.
func (dec *Decoder) Buffered() int {
	return len(dec.buf)
}

// Decode consumes complete frames from the front of the receive buffer and
// returns the first completed message, at most one per call.
//
// The result is tri-state:
//   - (msg, nil): a complete message; call Decode again, more frames may
//     already be buffered.
//   - (nil, nil): no complete message yet; feed more bytes with Write.
//     Nothing has been consumed from the partial frame.
//   - (nil, err): a protocol violation. The stream's framing can no longer
//     be trusted and the connection should be closed.
func (dec *Decoder) Decode() (*Message, error) {
	for len(dec.buf) > 1 {
		f, n, err := dec.parseFrame()
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// Incomplete frame: leave the buffer untouched.
			return nil, nil
		}
		dec.buf = dec.buf[n:]

		msg, err := dec.reassemble(f)
		if err != nil {
			return nil, err
		}
		if msg != nil {
			return msg, nil
		}
	}
	return nil, nil
}

// parseFrame parses one frame from the front of the receive buffer without
// consuming it, returning the frame and its total encoded length. A zero
// length with a nil error means the frame is not fully buffered yet.
func (dec *Decoder) parseFrame() (Frame, int, error) {
	buf := dec.buf
	if len(buf) < 2 {
		return Frame{}, 0, nil
	}
	if buf[0]&rsvBits != 0 {
		return Frame{}, 0, ErrReservedBits
	}
	typ, err := dec.d.frameType(buf[0] & opcodeBits)
	if err != nil {
		return Frame{}, 0, err
	}
	more := dec.d.more(buf[0])
	if more && typ.IsControl() {
		return Frame{}, 0, ErrFragmentedControl
	}
	// A pending fragmented message may be continued only by continuation
	// frames; control frames may interleave, data frames may not.
	if typ.IsData() && dec.pending != nil {
		return Frame{}, 0, fmt.Errorf("%w: got %v", ErrExpectedContinuation, typ)
	}

	masked := buf[1]&maskFlag != 0
	payloadLen, headerLen, err := parseLength(buf)
	if err != nil {
		return Frame{}, 0, err
	}
	if headerLen == 0 {
		// Extended length field not fully buffered yet.
		return Frame{}, 0, nil
	}
	if typ.IsControl() && payloadLen > maxControlPayload {
		return Frame{}, 0, fmt.Errorf("%w: %d bytes", ErrControlTooLarge, payloadLen)
	}

	// The length stays uint64 until checked against the limit; converting
	// to int first would overflow on 32-bit platforms and let a hostile
	// length slip past the checks below as a negative value.
	total := uint64(headerLen) + payloadLen
	if masked {
		total += 4
	}
	if total > uint64(dec.maxFrameSize) {
		return Frame{}, 0, fmt.Errorf("%w: %d bytes", ErrFrameTooLarge, total)
	}
	if uint64(len(buf)) < total {
		return Frame{}, 0, nil
	}
	n := int(total)

	payload := make([]byte, payloadLen)
	if masked {
		var key [4]byte
		copy(key[:], buf[headerLen:headerLen+4])
		copy(payload, buf[headerLen+4:n])
		maskBytes(key, payload)
	} else {
		copy(payload, buf[headerLen:n])
	}
	return Frame{Type: typ, Payload: payload, More: more}, n, nil
}

// parseLength decodes the payload length field starting at the second
// header byte, returning the payload length and the header length up to and
// including the length field. A zero header length with a nil error means
// the extended length bytes are not buffered yet.
func parseLength(buf []byte) (payloadLen uint64, headerLen int, err error) {
	switch l := buf[1] & lengthBits; l {
	case payloadLen16Bit:
		if len(buf) < 4 {
			return 0, 0, nil
		}
		return uint64(binary.BigEndian.Uint16(buf[2:4])), 4, nil
	case payloadLen64Bit:
		if len(buf) < 10 {
			return 0, 0, nil
		}
		// Only the low 4 bytes of the 64-bit field are honored; a
		// length needing the high bytes is outside this variant's
		// supported range and is rejected rather than truncated.
		if binary.BigEndian.Uint32(buf[2:6]) != 0 {
			return 0, 0, fmt.Errorf("%w: 64-bit length out of supported range", ErrFrameTooLarge)
		}
		return uint64(binary.BigEndian.Uint32(buf[6:10])), 10, nil
	default:
		return uint64(l), 2, nil
	}
}

// reassemble feeds one parsed frame into the fragmentation state machine,
// returning a message once one completes.
func (dec *Decoder) reassemble(f Frame) (*Message, error) {
	// Control frames are never fragmented and bypass accumulation, even
	// while a fragmented data message is pending.
	if f.Type.IsControl() {
		return &Message{Type: f.Type, Payload: f.Payload}, nil
	}

	switch {
	case f.Type == Continuation:
		if dec.pending == nil {
			return nil, ErrUnexpectedContinuation
		}
		dec.pending = append(dec.pending, f.Payload...)
		if f.More {
			return nil, nil
		}
		msg := &Message{Type: dec.pendingType, Payload: dec.pending}
		dec.pending = nil
		if msg.Type == Text && !utf8.Valid(msg.Payload) {
			return nil, ErrInvalidUTF8
		}
		return msg, nil
	case f.More:
		// First frame of a fragmented message. The reassembly buffer
		// must be non-nil even for an empty first fragment: pending
		// non-nil is what marks a message in progress.
		dec.pending = append(make([]byte, 0, len(f.Payload)), f.Payload...)
		dec.pendingType = f.Type
		return nil, nil
	default:
		if f.Type == Text && !utf8.Valid(f.Payload) {
			return nil, ErrInvalidUTF8
		}
		return &Message{Type: f.Type, Payload: f.Payload}, nil
	}
}
