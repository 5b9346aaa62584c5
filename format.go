package der

/*
format.go contains the shared format(encoding) surface used by
every universal tag wrapper: rendering the full TLV as Base64 (the
default) or hex.
*/

/*
formatRaw renders raw per enc, which may be "hex" or "base64"
(case-insensitive; anything else, including the empty string,
defaults to base64).
*/
func formatRaw(raw []byte, enc string) string {
	if eqFold(enc, "hex") {
		return hexEnc(raw)
	}
	return b64Enc(raw)
}
