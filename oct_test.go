package der

import (
	"bytes"
	"testing"
)

func TestOctetString_roundTrip(t *testing.T) {
	v := NewOctetStringFromValue([]byte("hi"))
	back, err := NewOctetStringFromBytes(v.RawBytes())
	if err != nil {
		t.Fatalf("NewOctetStringFromBytes: %v", err)
	}
	if !bytes.Equal(back.Value(), []byte("hi")) {
		t.Fatalf("round trip = %q, want %q", back.Value(), "hi")
	}
}

func TestOctetString_emptyPayload(t *testing.T) {
	v := NewOctetStringFromValue(nil)
	if !bytes.Equal(v.RawBytes(), []byte{0x04, 0x00}) {
		t.Fatalf("empty OCTET STRING = % x, want 04 00", v.RawBytes())
	}
}

func TestOctetString_rejectsWrongTag(t *testing.T) {
	if _, err := NewOctetStringFromBytes([]byte{0x02, 0x01, 0x05}); err == nil {
		t.Fatalf("NewOctetStringFromBytes should reject a non-OCTET-STRING tag")
	}
}
