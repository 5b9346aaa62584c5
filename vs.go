package der

/*
vs.go contains the VisibleString typed value wrapper.
*/

/*
VisibleStringValue is the typed value wrapper over the VisibleString
universal tag, restricted to the printable ASCII range 0x20-0x7E.
*/
type VisibleStringValue struct {
	rawBytes []byte
	value    string
}

func NewVisibleStringFromValue(s string) (VisibleStringValue, error) {
	if err := validateVisibleString(s); err != nil {
		return VisibleStringValue{}, err
	}
	return VisibleStringValue{rawBytes: wrapTLV(byte(TagVisibleString), []byte(s)), value: s}, nil
}

func NewVisibleStringFromBytes(raw []byte) (VisibleStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return VisibleStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagVisibleString)); err != nil {
		return VisibleStringValue{}, err
	}
	return visibleStringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewVisibleStringFromReader(r *Reader) (VisibleStringValue, error) {
	if err := r.ExpectTag(byte(TagVisibleString)); err != nil {
		return VisibleStringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return visibleStringFromPayload(full, r.GetPayload())
}

func visibleStringFromPayload(full, payload []byte) (VisibleStringValue, error) {
	s := string(payload)
	if err := validateVisibleString(s); err != nil {
		return VisibleStringValue{}, err
	}
	return VisibleStringValue{rawBytes: full, value: s}, nil
}

func (r VisibleStringValue) Tag() int          { return TagVisibleString }
func (r VisibleStringValue) TagName() string   { return TagNames[TagVisibleString] }
func (r VisibleStringValue) IsContainer() bool { return false }
func (r VisibleStringValue) RawBytes() []byte  { return r.rawBytes }
func (r VisibleStringValue) Value() string     { return r.value }
func (r VisibleStringValue) Display() string   { return r.value }
func (r VisibleStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
