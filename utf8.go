package der

/*
utf8.go contains the UTF8String typed value wrapper.
*/

/*
UTF8StringValue is the typed value wrapper over the UTF8String
universal tag. Its payload is the string's raw UTF-8 bytes.
*/
type UTF8StringValue struct {
	rawBytes []byte
	value    string
}

func NewUTF8StringFromValue(s string) (UTF8StringValue, error) {
	if !utf8OK(s) {
		return UTF8StringValue{}, invalidDataf("UTF8String value is not valid UTF-8")
	}
	return UTF8StringValue{rawBytes: wrapTLV(byte(TagUTF8String), []byte(s)), value: s}, nil
}

func NewUTF8StringFromBytes(raw []byte) (UTF8StringValue, error) {
	r, err := New(raw)
	if err != nil {
		return UTF8StringValue{}, err
	}
	if err = r.ExpectTag(byte(TagUTF8String)); err != nil {
		return UTF8StringValue{}, err
	}
	return utf8StringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewUTF8StringFromReader(r *Reader) (UTF8StringValue, error) {
	if err := r.ExpectTag(byte(TagUTF8String)); err != nil {
		return UTF8StringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return utf8StringFromPayload(full, r.GetPayload())
}

func utf8StringFromPayload(full, payload []byte) (UTF8StringValue, error) {
	s := string(payload)
	if !utf8OK(s) {
		return UTF8StringValue{}, invalidDataf("UTF8String payload is not valid UTF-8")
	}
	return UTF8StringValue{rawBytes: full, value: s}, nil
}

func (r UTF8StringValue) Tag() int          { return TagUTF8String }
func (r UTF8StringValue) TagName() string   { return TagNames[TagUTF8String] }
func (r UTF8StringValue) IsContainer() bool { return false }
func (r UTF8StringValue) RawBytes() []byte  { return r.rawBytes }
func (r UTF8StringValue) Value() string     { return r.value }
func (r UTF8StringValue) Display() string   { return r.value }
func (r UTF8StringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
