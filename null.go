package der

/*
null.go contains the NULL typed value wrapper.
*/

/*
NullValue is the typed value wrapper over the NULL universal tag. Its
payload is always zero-length; there is no semantic value to carry.
*/
type NullValue struct {
	rawBytes []byte
}

func NewNullValue() NullValue {
	return NullValue{rawBytes: wrapTLV(byte(TagNull), []byte{})}
}

func NewNullFromBytes(raw []byte) (NullValue, error) {
	r, err := New(raw)
	if err != nil {
		return NullValue{}, err
	}
	if err = r.ExpectTag(byte(TagNull)); err != nil {
		return NullValue{}, err
	}
	if len(r.GetPayload()) != 0 {
		return NullValue{}, invalidDataf("NULL payload must be empty")
	}
	return NullValue{rawBytes: raw[:r.Current().FullLength]}, nil
}

func NewNullFromReader(r *Reader) (NullValue, error) {
	if err := r.ExpectTag(byte(TagNull)); err != nil {
		return NullValue{}, err
	}
	if len(r.GetPayload()) != 0 {
		return NullValue{}, invalidDataf("NULL payload must be empty")
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return NullValue{rawBytes: full}, nil
}

func (r NullValue) Tag() int            { return TagNull }
func (r NullValue) TagName() string     { return TagNames[TagNull] }
func (r NullValue) IsContainer() bool   { return false }
func (r NullValue) RawBytes() []byte    { return r.rawBytes }
func (r NullValue) Display() string     { return "NULL" }
func (r NullValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
