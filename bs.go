package der

/*
bs.go contains the BIT STRING typed value wrapper.

BIT STRING's payload carries a leading "unused bits" count octet
(0-7) ahead of the bit data proper; both this wrapper and the tree
reader's opportunistic-descent probe must skip that leading
octet before treating the remainder as content.
*/

/*
BitStringValue is the typed value wrapper over the BIT STRING
universal tag.
*/
type BitStringValue struct {
	rawBytes   []byte
	bits       []byte
	unusedBits int
}

func NewBitStringFromValue(bits []byte, unusedBits int) (BitStringValue, error) {
	if unusedBits < 0 || unusedBits > 7 {
		return BitStringValue{}, invalidDataf("BIT STRING unused bits count must be 0-7, got ", unusedBits)
	}
	if unusedBits > 0 && len(bits) == 0 {
		return BitStringValue{}, invalidDataf("BIT STRING with no content octets must have 0 unused bits")
	}
	payload := append([]byte{byte(unusedBits)}, bits...)
	return BitStringValue{
		rawBytes:   wrapTLV(byte(TagBitString), payload),
		bits:       append([]byte{}, bits...),
		unusedBits: unusedBits,
	}, nil
}

func NewBitStringFromBytes(raw []byte) (BitStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return BitStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagBitString)); err != nil {
		return BitStringValue{}, err
	}
	return bitStringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewBitStringFromReader(r *Reader) (BitStringValue, error) {
	if err := r.ExpectTag(byte(TagBitString)); err != nil {
		return BitStringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return bitStringFromPayload(full, r.GetPayload())
}

func bitStringFromPayload(full, payload []byte) (BitStringValue, error) {
	if len(payload) == 0 {
		return BitStringValue{}, invalidDataf("BIT STRING payload must contain at least the unused-bits octet")
	}
	unused := int(payload[0])
	if unused < 0 || unused > 7 {
		return BitStringValue{}, invalidDataf("BIT STRING unused bits count must be 0-7, got ", unused)
	}
	if unused > 0 && len(payload) == 1 {
		return BitStringValue{}, invalidDataf("BIT STRING with no content octets must have 0 unused bits")
	}
	return BitStringValue{
		rawBytes:   full,
		bits:       append([]byte{}, payload[1:]...),
		unusedBits: unused,
	}, nil
}

func (r BitStringValue) Tag() int            { return TagBitString }
func (r BitStringValue) TagName() string     { return TagNames[TagBitString] }
func (r BitStringValue) IsContainer() bool   { return false }
func (r BitStringValue) RawBytes() []byte    { return r.rawBytes }
func (r BitStringValue) Bits() []byte        { return r.bits }
func (r BitStringValue) UnusedBits() int     { return r.unusedBits }
func (r BitStringValue) Display() string     { return hexEnc(r.bits) }
func (r BitStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
