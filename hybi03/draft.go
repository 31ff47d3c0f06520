package hybi03

import "fmt"

// Wire layout of the first two header bytes:
//
//	byte 0: MORE(1) RSV(3) opcode(4)
//	byte 1: MASK(1) payload len(7)
//
// Draft 03 uses the byte-0 high bit as "more frames of this message
// follow"; later drafts repurpose it as FIN with inverted polarity.
const (
	moreBit    = 0x80
	rsvBits    = 0x70
	opcodeBits = 0x0F
	maskFlag   = 0x80
	lengthBits = 0x7F
)

// Payload length encoding thresholds, shared by all draft variants.
const (
	payloadLen7Bit  = 125 // 0-125: stored in 7 bits
	payloadLen16Bit = 126 // 126: followed by 16-bit length
	payloadLen64Bit = 127 // 127: followed by 64-bit length

	// maxControlPayload is the maximum payload length for control frames.
	maxControlPayload = 125
)

// draft holds the wire constants that differ between protocol draft
// variants: the opcode table in both directions and the polarity of the
// byte-0 high bit. The codec consults the policy and never hardcodes
// opcodes, so sibling variants can reuse the skeleton with a different
// table.
type draft struct {
	// opcodes maps frame types to wire opcodes (encode direction).
	opcodes map[FrameType]byte

	// types maps wire opcodes to frame types (decode direction).
	types map[byte]FrameType

	// fin flips the meaning of the byte-0 high bit. The wire "more"
	// flag is the raw bit XOR fin: false for draft 03 (the bit means
	// "more frames follow" directly), true for variants that carry a
	// FIN bit instead.
	fin bool
}

// draft03 is the policy for draft-ietf-hybi-thewebsocketprotocol-03.
var draft03 = &draft{
	opcodes: map[FrameType]byte{
		Continuation: 0x0,
		Close:        0x1,
		Ping:         0x2,
		Pong:         0x3,
		Text:         0x4,
		Binary:       0x5,
	},
	types: map[byte]FrameType{
		0x0: Continuation,
		0x1: Close,
		0x2: Ping,
		0x3: Pong,
		0x4: Text,
		0x5: Binary,
	},
	fin: false,
}

// opcode resolves a frame type to its wire opcode.
func (d *draft) opcode(t FrameType) (byte, error) {
	op, ok := d.opcodes[t]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownFrameType, uint8(t))
	}
	return op, nil
}

// frameType resolves a 4-bit wire opcode to its frame type.
func (d *draft) frameType(op byte) (FrameType, error) {
	t, ok := d.types[op]
	if !ok {
		return 0, fmt.Errorf("%w: 0x%X", ErrUnknownOpcode, op)
	}
	return t, nil
}

// more decodes the byte-0 high bit into the fragmentation flag.
func (d *draft) more(b0 byte) bool {
	return (b0&moreBit != 0) != d.fin
}
