package hybi03

import (
	"errors"
	"testing"
)

// TestFrameType_Classification verifies the control/data split.
func TestFrameType_Classification(t *testing.T) {
	tests := []struct {
		typ         FrameType
		wantControl bool
		wantData    bool
	}{
		{Continuation, false, false},
		{Text, false, true},
		{Binary, false, true},
		{Close, true, false},
		{Ping, true, false},
		{Pong, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := tt.typ.IsControl(); got != tt.wantControl {
				t.Errorf("IsControl() = %v, want %v", got, tt.wantControl)
			}
			if got := tt.typ.IsData(); got != tt.wantData {
				t.Errorf("IsData() = %v, want %v", got, tt.wantData)
			}
		})
	}
}

// TestDraft03_TableRoundTrip verifies the opcode table is bidirectional
// over the full draft 03 range.
func TestDraft03_TableRoundTrip(t *testing.T) {
	for op := byte(0x0); op <= 0x5; op++ {
		typ, err := draft03.frameType(op)
		if err != nil {
			t.Fatalf("frameType(0x%X) failed: %v", op, err)
		}
		back, err := draft03.opcode(typ)
		if err != nil {
			t.Fatalf("opcode(%v) failed: %v", typ, err)
		}
		if back != op {
			t.Errorf("opcode round trip: 0x%X -> %v -> 0x%X", op, typ, back)
		}
	}

	if _, err := draft03.frameType(0x6); !errors.Is(err, ErrUnknownOpcode) {
		t.Errorf("expected ErrUnknownOpcode for 0x6, got %v", err)
	}
}

// TestDraft03_MorePolarity verifies draft 03 reads the high bit as "more"
// without inversion.
func TestDraft03_MorePolarity(t *testing.T) {
	if !draft03.more(0x84) {
		t.Error("expected more=true for high bit set")
	}
	if draft03.more(0x04) {
		t.Error("expected more=false for high bit clear")
	}
}
