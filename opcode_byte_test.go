package prs

import "testing"

func TestOpcodeByteTruncatesToLowByte(t *testing.T) {
	if got := opcodeByte(-1); got != 0xff {
		t.Errorf("opcodeByte(-1) = %#x, want 0xff", got)
	}
	if got := opcodeByte(256); got != 0x00 {
		t.Errorf("opcodeByte(256) = %#x, want 0x00", got)
	}
	if got := opcodeByte(65); got != 65 {
		t.Errorf("opcodeByte(65) = %d, want 65", got)
	}
}
