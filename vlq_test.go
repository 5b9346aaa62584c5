package der

import (
	"bytes"
	"testing"
)

func TestBase128RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 39, 127, 128, 300, 113549, 1<<32 - 1} {
		enc := encodeBase128(v)
		got, n, err := decodeBase128[uint64](enc)
		if err != nil {
			t.Fatalf("decodeBase128(%x): %v", enc, err)
		}
		if got != v {
			t.Fatalf("decodeBase128(encodeBase128(%d)) = %d", v, got)
		}
		if n != len(enc) {
			t.Fatalf("decodeBase128 consumed %d octets, want %d", n, len(enc))
		}
	}
}

func TestEncodeBase128_zero(t *testing.T) {
	if got := encodeBase128[uint64](0); !bytes.Equal(got, []byte{0x00}) {
		t.Fatalf("encodeBase128(0) = %x, want 00", got)
	}
}

func TestEncodeBase128_continuationBit(t *testing.T) {
	// 300 = 0b100101100 -> base-128 groups [0000010, 0101100]
	// encoded with continuation bit set on all but the last octet.
	enc := encodeBase128[uint64](300)
	if len(enc) != 2 {
		t.Fatalf("encodeBase128(300) = %x, want 2 octets", enc)
	}
	if enc[0]&0x80 == 0 {
		t.Fatalf("leading octet must have the continuation bit set")
	}
	if enc[len(enc)-1]&0x80 != 0 {
		t.Fatalf("final octet must not have the continuation bit set")
	}
}
