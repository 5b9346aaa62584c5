package der

import (
	"bytes"
	"testing"
)

func TestNull_encodesEmptyPayload(t *testing.T) {
	if got, want := NewNullValue().RawBytes(), []byte{0x05, 0x00}; !bytes.Equal(got, want) {
		t.Fatalf("NULL = % x, want % x", got, want)
	}
}

func TestNull_roundTrip(t *testing.T) {
	n := NewNullValue()
	back, err := NewNullFromBytes(n.RawBytes())
	if err != nil {
		t.Fatalf("NewNullFromBytes: %v", err)
	}
	if !bytes.Equal(back.RawBytes(), n.RawBytes()) {
		t.Fatalf("round trip mismatch")
	}
}

func TestNull_rejectsNonEmptyPayload(t *testing.T) {
	if _, err := NewNullFromBytes([]byte{0x05, 0x01, 0x00}); err == nil {
		t.Fatalf("NULL payload must be empty")
	}
}

func TestNull_rejectsWrongTag(t *testing.T) {
	if _, err := NewNullFromBytes([]byte{0x02, 0x00}); err == nil {
		t.Fatalf("NewNullFromBytes should reject a non-NULL tag")
	}
}
