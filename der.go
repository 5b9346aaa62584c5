package der

/*
der.go contains the DER emitter helpers: given a payload and an
outer tag, wrap it as tag ‖ length ‖ payload using the canonical
short/long length form from header.go. No interior reordering is
performed; callers that require SET-OF canonical ordering must
pre-sort their children before calling these helpers.
*/

/*
wrapTLV renders payload as a complete TLV under outerTag.
*/
func wrapTLV(outerTag byte, payload []byte) []byte {
	lenBytes := encodeLength(len(payload))
	out := make([]byte, 0, 1+len(lenBytes)+len(payload))
	out = append(out, outerTag)
	out = append(out, lenBytes...)
	out = append(out, payload...)
	return out
}

/*
validateTLVSequence parses buf as a back-to-back run of zero or more
complete DER TLVs (what add_sequence/add_set validate before
wrapping) and returns an error if any trailing bytes fail to form a
complete TLV or are left unconsumed.
*/
func validateTLVSequence(buf []byte) error {
	pos := 0
	for pos < len(buf) {
		tb := buf[pos]
		if tb == 0 {
			return invalidTagf("tag 0x00 at offset ", pos)
		}
		if _, _, _, err := tagHeader(tb); err != nil {
			return err
		}

		length, lenOctets, err := decodeLength(buf, pos+1)
		if err != nil {
			return err
		}

		full := 1 + lenOctets + length
		if pos+full > len(buf) {
			return invalidDataf("truncated child TLV at offset ", pos)
		}
		pos += full
	}

	if pos != len(buf) {
		return invalidDataf("trailing bytes after last well-formed TLV")
	}
	return nil
}
