package der

import (
	"encoding/base64"
	"encoding/hex"
	"math/big"
	"testing"
	"time"
)

func TestFormatRaw_hexIsCaseInsensitive(t *testing.T) {
	raw := []byte{0x02, 0x01, 0x05}
	want := hex.EncodeToString(raw)
	for _, enc := range []string{"hex", "Hex", "HEX", "hEx"} {
		if got := formatRaw(raw, enc); got != want {
			t.Fatalf("formatRaw(%q) = %q, want %q", enc, got, want)
		}
	}
}

func TestFormatRaw_defaultsToBase64(t *testing.T) {
	raw := []byte{0x02, 0x01, 0x05}
	want := base64.StdEncoding.EncodeToString(raw)
	for _, enc := range []string{"base64", "", "bogus"} {
		if got := formatRaw(raw, enc); got != want {
			t.Fatalf("formatRaw(%q) = %q, want %q", enc, got, want)
		}
	}
}

func TestInteger_formatAndDisplay(t *testing.T) {
	v := NewIntegerFromInt64(42)
	if v.Display() != "42" {
		t.Fatalf("Display() = %q, want 42", v.Display())
	}
	if v.Format("hex") != hex.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(hex) mismatch")
	}
	if v.Format("base64") != base64.StdEncoding.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(base64) mismatch")
	}
}

func TestBoolean_formatAndDisplay(t *testing.T) {
	v := NewBooleanFromValue(true)
	if v.Display() != "true" {
		t.Fatalf("Display() = %q, want true", v.Display())
	}
	if v.Format("HEX") != hex.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(HEX) mismatch")
	}
}

func TestOID_formatAndDisplay(t *testing.T) {
	v, err := NewOIDFromDotted("2.5.4.3")
	if err != nil {
		t.Fatalf("NewOIDFromDotted: %v", err)
	}
	if v.Display() != "2.5.4.3" {
		t.Fatalf("Display() = %q, want 2.5.4.3", v.Display())
	}
	if v.Format("hex") != hex.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(hex) mismatch")
	}
	if v.Format("") != base64.StdEncoding.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(\"\") mismatch")
	}
}

func TestUTCTime_formatAndDisplay(t *testing.T) {
	d := DateTime{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	v, err := NewUTCTimeFromValue(d, false)
	if err != nil {
		t.Fatalf("NewUTCTimeFromValue: %v", err)
	}
	if v.Display() != d.Time.Format(time.RFC3339) {
		t.Fatalf("Display() = %q, want %q", v.Display(), d.Time.Format(time.RFC3339))
	}
	if v.Format("hex") != hex.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(hex) mismatch")
	}
}

func TestUTF8String_formatAndDisplay(t *testing.T) {
	v, err := NewUTF8StringFromValue("héllo")
	if err != nil {
		t.Fatalf("NewUTF8StringFromValue: %v", err)
	}
	if v.Display() != "héllo" {
		t.Fatalf("Display() = %q, want héllo", v.Display())
	}
	if v.Format("hex") != hex.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(hex) mismatch")
	}
	if v.Format("base64") != base64.StdEncoding.EncodeToString(v.RawBytes()) {
		t.Fatalf("Format(base64) mismatch")
	}
}

func TestBigInteger_formatMatchesDisplay(t *testing.T) {
	n, ok := new(big.Int).SetString("115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	if !ok {
		t.Fatalf("SetString failed")
	}
	v := NewIntegerFromValue(n)
	if v.Display() != n.String() {
		t.Fatalf("Display() = %q, want %q", v.Display(), n.String())
	}
}
