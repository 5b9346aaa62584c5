package der

/*
oct.go contains the OCTET STRING typed value wrapper.

OCTET STRING is one of the tags eligible for opportunistic descent
a reader may find that an OCTET STRING's payload is itself a
single well-formed TLV and report it as constructed, but that is a
reader-level concern (node.IsConstructed) and has no bearing on this
wrapper, which only ever sees the raw payload bytes.
*/

/*
OctetStringValue is the typed value wrapper over the OCTET STRING
universal tag.
*/
type OctetStringValue struct {
	rawBytes []byte
	value    []byte
}

func NewOctetStringFromValue(v []byte) OctetStringValue {
	payload := append([]byte{}, v...)
	return OctetStringValue{rawBytes: wrapTLV(byte(TagOctetString), payload), value: payload}
}

func NewOctetStringFromBytes(raw []byte) (OctetStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return OctetStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagOctetString)); err != nil {
		return OctetStringValue{}, err
	}
	payload := append([]byte{}, r.GetPayload()...)
	return OctetStringValue{rawBytes: raw[:r.Current().FullLength], value: payload}, nil
}

func NewOctetStringFromReader(r *Reader) (OctetStringValue, error) {
	if err := r.ExpectTag(byte(TagOctetString)); err != nil {
		return OctetStringValue{}, err
	}
	payload := append([]byte{}, r.GetPayload()...)
	full := append(append([]byte{}, r.GetHeader()...), payload...)
	return OctetStringValue{rawBytes: full, value: payload}, nil
}

func (r OctetStringValue) Tag() int          { return TagOctetString }
func (r OctetStringValue) TagName() string   { return TagNames[TagOctetString] }
func (r OctetStringValue) IsContainer() bool { return false }
func (r OctetStringValue) RawBytes() []byte  { return r.rawBytes }
func (r OctetStringValue) Value() []byte     { return r.value }
func (r OctetStringValue) Display() string   { return hexEnc(r.value) }
func (r OctetStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
