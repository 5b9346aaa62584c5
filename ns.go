package der

/*
ns.go contains the NumericString typed value wrapper.
*/

/*
NumericStringValue is the typed value wrapper over the NumericString
universal tag, restricted to digits and the space character.
*/
type NumericStringValue struct {
	rawBytes []byte
	value    string
}

func NewNumericStringFromValue(s string) (NumericStringValue, error) {
	if err := validateNumericString(s); err != nil {
		return NumericStringValue{}, err
	}
	return NumericStringValue{rawBytes: wrapTLV(byte(TagNumericString), []byte(s)), value: s}, nil
}

func NewNumericStringFromBytes(raw []byte) (NumericStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return NumericStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagNumericString)); err != nil {
		return NumericStringValue{}, err
	}
	return numericStringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewNumericStringFromReader(r *Reader) (NumericStringValue, error) {
	if err := r.ExpectTag(byte(TagNumericString)); err != nil {
		return NumericStringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return numericStringFromPayload(full, r.GetPayload())
}

func numericStringFromPayload(full, payload []byte) (NumericStringValue, error) {
	s := string(payload)
	if err := validateNumericString(s); err != nil {
		return NumericStringValue{}, err
	}
	return NumericStringValue{rawBytes: full, value: s}, nil
}

func (r NumericStringValue) Tag() int          { return TagNumericString }
func (r NumericStringValue) TagName() string   { return TagNames[TagNumericString] }
func (r NumericStringValue) IsContainer() bool { return false }
func (r NumericStringValue) RawBytes() []byte  { return r.rawBytes }
func (r NumericStringValue) Value() string     { return r.value }
func (r NumericStringValue) Display() string   { return r.value }
func (r NumericStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
