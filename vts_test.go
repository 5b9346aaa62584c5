package der

import "bytes"
import "testing"

func TestVideotexString_roundTrip(t *testing.T) {
	raw := []byte{0x1B, 0x41, 0x42}
	v := NewVideotexStringFromValue(raw)
	back, err := NewVideotexStringFromBytes(v.RawBytes())
	if err != nil {
		t.Fatalf("NewVideotexStringFromBytes: %v", err)
	}
	if !bytes.Equal(back.Value(), raw) {
		t.Fatalf("round trip = % x, want % x", back.Value(), raw)
	}
}

func TestVideotexString_rejectsWrongTag(t *testing.T) {
	if _, err := NewVideotexStringFromBytes([]byte{0x14, 0x01, 0x41}); err == nil {
		t.Fatalf("NewVideotexStringFromBytes should reject a non-VideotexString tag")
	}
}
