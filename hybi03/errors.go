package hybi03

import "errors"

// Protocol errors surfaced by the codec.
//
// Every error here is fatal for the connection that produced it: each one
// reflects either a caller bug or a peer that is not speaking this draft,
// never a transient condition. The caller is expected to close the
// connection rather than retry the frame.

var (
	// ErrUnknownFrameType indicates a frame type outside this draft's
	// table was passed to the encoder.
	ErrUnknownFrameType = errors.New("hybi03: unknown frame type")

	// ErrUnknownOpcode indicates a wire opcode outside this draft's
	// table. Draft 03 defines opcodes 0x0-0x5 only.
	ErrUnknownOpcode = errors.New("hybi03: unknown opcode")

	// ErrReservedBits indicates the RSV1/RSV2/RSV3 header bits are set.
	// Reserved bits must be 0 in this draft.
	ErrReservedBits = errors.New("hybi03: reserved bits must be 0")

	// ErrFragmentedControl indicates a control frame declared itself
	// fragmented. Control frames must always be complete.
	ErrFragmentedControl = errors.New("hybi03: fragmented control frame")

	// ErrControlTooLarge indicates a control frame payload longer than
	// 125 bytes.
	ErrControlTooLarge = errors.New("hybi03: control frame payload too large")

	// ErrExpectedContinuation indicates a new data frame arrived while a
	// fragmented message was still being reassembled. A pending message
	// may be continued only by continuation frames.
	ErrExpectedContinuation = errors.New("hybi03: data frame during fragmented message")

	// ErrUnexpectedContinuation indicates a continuation frame arrived
	// with no fragmented message in progress.
	ErrUnexpectedContinuation = errors.New("hybi03: unexpected continuation frame")

	// ErrInvalidUTF8 indicates a text payload, single-frame or fully
	// reassembled, is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("hybi03: invalid UTF-8 in text message")

	// ErrFrameTooLarge indicates a frame whose total length exceeds the
	// decoder's configured maximum, or a 64-bit length field outside the
	// supported range.
	ErrFrameTooLarge = errors.New("hybi03: frame too large")
)
