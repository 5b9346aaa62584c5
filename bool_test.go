package der

import (
	"bytes"
	"testing"
)

func TestBoolean_roundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		b := NewBooleanFromValue(v)
		back, err := NewBooleanFromBytes(b.RawBytes())
		if err != nil {
			t.Fatalf("NewBooleanFromBytes(%v): %v", v, err)
		}
		if back.Value() != v {
			t.Fatalf("round trip %v -> %v", v, back.Value())
		}
	}
}

func TestBoolean_encodedOctets(t *testing.T) {
	if !bytes.Equal(NewBooleanFromValue(true).RawBytes(), []byte{0x01, 0x01, 0xFF}) {
		t.Fatalf("true must encode as 01 01 FF")
	}
	if !bytes.Equal(NewBooleanFromValue(false).RawBytes(), []byte{0x01, 0x01, 0x00}) {
		t.Fatalf("false must encode as 01 01 00")
	}
}

func TestBoolean_rejectsWrongLength(t *testing.T) {
	if _, err := NewBooleanFromBytes([]byte{0x01, 0x02, 0x00, 0x00}); err == nil {
		t.Fatalf("BOOLEAN payload must be exactly 1 octet")
	}
}

func TestBoolean_rejectsNonCanonicalOctet(t *testing.T) {
	if _, err := NewBooleanFromBytes([]byte{0x01, 0x01, 0x42}); err == nil {
		t.Fatalf("BOOLEAN octet must be 0x00 or 0xFF")
	}
}

func TestBoolean_rejectsWrongTag(t *testing.T) {
	if _, err := NewBooleanFromBytes([]byte{0x02, 0x01, 0xFF}); err == nil {
		t.Fatalf("NewBooleanFromBytes should reject a non-BOOLEAN tag")
	}
}
