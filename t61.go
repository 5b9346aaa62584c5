package der

/*
t61.go contains the T61String typed value wrapper, the
ITU-T T.61 (Teletex) string. T.61's 8-bit repertoire overlaps ASCII
but isn't equal to it; this codec stores the payload verbatim rather
than attempting a codepage translation.
*/

/*
T61StringValue is the typed value wrapper over the T61String
universal tag.
*/
type T61StringValue struct {
	rawBytes []byte
	value    []byte
}

func NewT61StringFromValue(b []byte) T61StringValue {
	payload := append([]byte{}, b...)
	return T61StringValue{rawBytes: wrapTLV(byte(TagT61String), payload), value: payload}
}

func NewT61StringFromBytes(raw []byte) (T61StringValue, error) {
	r, err := New(raw)
	if err != nil {
		return T61StringValue{}, err
	}
	if err = r.ExpectTag(byte(TagT61String)); err != nil {
		return T61StringValue{}, err
	}
	payload := append([]byte{}, r.GetPayload()...)
	return T61StringValue{rawBytes: raw[:r.Current().FullLength], value: payload}, nil
}

func NewT61StringFromReader(r *Reader) (T61StringValue, error) {
	if err := r.ExpectTag(byte(TagT61String)); err != nil {
		return T61StringValue{}, err
	}
	payload := append([]byte{}, r.GetPayload()...)
	full := append(append([]byte{}, r.GetHeader()...), payload...)
	return T61StringValue{rawBytes: full, value: payload}, nil
}

func (r T61StringValue) Tag() int          { return TagT61String }
func (r T61StringValue) TagName() string   { return TagNames[TagT61String] }
func (r T61StringValue) IsContainer() bool { return false }
func (r T61StringValue) RawBytes() []byte  { return r.rawBytes }
func (r T61StringValue) Value() []byte     { return r.value }
func (r T61StringValue) Display() string   { return hexEnc(r.value) }
func (r T61StringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
