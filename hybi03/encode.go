package hybi03

import (
	"encoding/binary"
	"fmt"
)

// Frame is one wire frame to encode.
//
// More marks the frame as a non-terminal fragment: another frame of the
// same message follows. The middle and final frames of a fragmented message
// use Type Continuation.
type Frame struct {
	Type    FrameType
	Payload []byte
	More    bool
}

// EncodeFrame serializes one frame into wire bytes.
//
// When masked is true a fresh random masking key is generated, prepended
// after the header, and XORed over the payload. Whether to mask is a
// property of the connection role (one side of the connection masks, the
// other must not) and is decided by the caller.
//
// The returned slice is freshly allocated; f.Payload is not modified.
func EncodeFrame(f Frame, masked bool) ([]byte, error) {
	opcode, err := draft03.opcode(f.Type)
	if err != nil {
		return nil, err
	}
	if f.Type.IsControl() {
		if f.More {
			return nil, ErrFragmentedControl
		}
		if len(f.Payload) > maxControlPayload {
			return nil, fmt.Errorf("%w: %d bytes", ErrControlTooLarge, len(f.Payload))
		}
	}

	b0 := opcode
	if f.More != draft03.fin {
		b0 |= moreBit
	}

	buf := make([]byte, 0, 2+8+4+len(f.Payload))
	buf = append(buf, b0)

	var mask byte
	if masked {
		mask = maskFlag
	}
	buf = appendLength(buf, len(f.Payload), mask)

	if masked {
		key := newMaskKey()
		buf = append(buf, key[:]...)
		start := len(buf)
		buf = append(buf, f.Payload...)
		maskBytes(key, buf[start:])
	} else {
		buf = append(buf, f.Payload...)
	}
	return buf, nil
}

// EncodeMessage serializes a whole application message as a single
// unfragmented frame.
//
// Continuation is not a message type; passing it (or any type outside the
// draft's table) fails with ErrUnknownFrameType. Callers fragmenting a
// message build the individual frames with EncodeFrame instead.
func EncodeMessage(typ FrameType, payload []byte, masked bool) ([]byte, error) {
	if typ == Continuation {
		return nil, fmt.Errorf("%w: continuation is not a message type", ErrUnknownFrameType)
	}
	return EncodeFrame(Frame{Type: typ, Payload: payload}, masked)
}

// appendLength appends the length byte (with the mask flag ORed in) and any
// extended length field:
//
//	0-125:        7-bit literal length
//	126-65535:    126 marker + 16-bit big-endian length
//	65536 and up: 127 marker + 64-bit big-endian length
//
// Only the low 4 bytes of the 64-bit field are ever populated; payloads of
// 4 GiB and up are outside this variant's supported range.
func appendLength(buf []byte, n int, mask byte) []byte {
	switch {
	case n <= payloadLen7Bit:
		return append(buf, byte(n)|mask)
	case n <= 0xFFFF:
		buf = append(buf, payloadLen16Bit|mask)
		return binary.BigEndian.AppendUint16(buf, uint16(n))
	default:
		buf = append(buf, payloadLen64Bit|mask)
		buf = append(buf, 0, 0, 0, 0)
		return binary.BigEndian.AppendUint32(buf, uint32(n))
	}
}
