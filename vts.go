package der

/*
vts.go contains the VideotexString typed value wrapper,
an obsolete CCITT videotex repertoire. Like T61String, this codec
stores the payload verbatim without codepage translation.
*/

/*
VideotexStringValue is the typed value wrapper over the
VideotexString universal tag.
*/
type VideotexStringValue struct {
	rawBytes []byte
	value    []byte
}

func NewVideotexStringFromValue(b []byte) VideotexStringValue {
	payload := append([]byte{}, b...)
	return VideotexStringValue{rawBytes: wrapTLV(byte(TagVideotexString), payload), value: payload}
}

func NewVideotexStringFromBytes(raw []byte) (VideotexStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return VideotexStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagVideotexString)); err != nil {
		return VideotexStringValue{}, err
	}
	payload := append([]byte{}, r.GetPayload()...)
	return VideotexStringValue{rawBytes: raw[:r.Current().FullLength], value: payload}, nil
}

func NewVideotexStringFromReader(r *Reader) (VideotexStringValue, error) {
	if err := r.ExpectTag(byte(TagVideotexString)); err != nil {
		return VideotexStringValue{}, err
	}
	payload := append([]byte{}, r.GetPayload()...)
	full := append(append([]byte{}, r.GetHeader()...), payload...)
	return VideotexStringValue{rawBytes: full, value: payload}, nil
}

func (r VideotexStringValue) Tag() int          { return TagVideotexString }
func (r VideotexStringValue) TagName() string   { return TagNames[TagVideotexString] }
func (r VideotexStringValue) IsContainer() bool { return false }
func (r VideotexStringValue) RawBytes() []byte  { return r.rawBytes }
func (r VideotexStringValue) Value() []byte     { return r.value }
func (r VideotexStringValue) Display() string   { return hexEnc(r.value) }
func (r VideotexStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
