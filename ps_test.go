package der

import "testing"

func TestPrintableString_roundTrip(t *testing.T) {
	v, err := NewPrintableStringFromValue("Hello, World.")
	if err != nil {
		t.Fatalf("NewPrintableStringFromValue: %v", err)
	}
	back, err := NewPrintableStringFromBytes(v.RawBytes())
	if err != nil {
		t.Fatalf("NewPrintableStringFromBytes: %v", err)
	}
	if back.Value() != "Hello, World." {
		t.Fatalf("round trip = %q, want %q", back.Value(), "Hello, World.")
	}
}

func TestPrintableString_rejectsDisallowedCharacter(t *testing.T) {
	if _, err := NewPrintableStringFromValue("hi!"); err == nil {
		t.Fatalf("PrintableString must reject '!'")
	}
}

func TestPrintableString_rejectsWrongTag(t *testing.T) {
	if _, err := NewPrintableStringFromBytes([]byte{0x16, 0x01, 0x41}); err == nil {
		t.Fatalf("NewPrintableStringFromBytes should reject a non-PrintableString tag")
	}
}
