package der

/*
vlq.go contains the base-128 variable-length-quantity codec shared by
the OID arc encoder/decoder (oid.go). Arc values are unsigned and
their bit width varies by caller, so the encode/decode pair is kept
generic over any unsigned integer constraint rather than hard-coded
to uint64.
*/

import "golang.org/x/exp/constraints"

/*
encodeBase128 renders v as a base-128 big-endian sequence with the
"more follows" bit (0x80) set on every octet but the last. The zero
value encodes as a single 0x00 octet.
*/
func encodeBase128[T constraints.Unsigned](v T) []byte {
	if v == 0 {
		return []byte{0x00}
	}

	var stack []byte
	for v > 0 {
		stack = append(stack, byte(v&0x7f))
		v >>= 7
	}

	out := make([]byte, len(stack))
	for i := range stack {
		b := stack[len(stack)-1-i]
		if i < len(stack)-1 {
			b |= 0x80
		}
		out[i] = b
	}
	return out
}

/*
decodeBase128 reads one base-128 VLQ value starting at b[0], returning
the decoded value and the number of octets consumed. An error is
returned if b is exhausted before the terminating octet (high bit
clear) is found.
*/
func decodeBase128[T constraints.Unsigned](b []byte) (T, int, error) {
	var v T
	for i := 0; i < len(b); i++ {
		v = (v << 7) | T(b[i]&0x7f)
		if b[i]&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, invalidDataf("truncated base-128 value")
}
