package der

/*
ia5.go contains the IA5String typed value wrapper,
International Alphabet No. 5 — the 7-bit ASCII repertoire.
*/

/*
IA5StringValue is the typed value wrapper over the IA5String universal
tag, restricted to octets in the 0x00-0x7F range.
*/
type IA5StringValue struct {
	rawBytes []byte
	value    string
}

func NewIA5StringFromValue(s string) (IA5StringValue, error) {
	if err := validateIA5String(s); err != nil {
		return IA5StringValue{}, err
	}
	return IA5StringValue{rawBytes: wrapTLV(byte(TagIA5String), []byte(s)), value: s}, nil
}

func NewIA5StringFromBytes(raw []byte) (IA5StringValue, error) {
	r, err := New(raw)
	if err != nil {
		return IA5StringValue{}, err
	}
	if err = r.ExpectTag(byte(TagIA5String)); err != nil {
		return IA5StringValue{}, err
	}
	return ia5StringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewIA5StringFromReader(r *Reader) (IA5StringValue, error) {
	if err := r.ExpectTag(byte(TagIA5String)); err != nil {
		return IA5StringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return ia5StringFromPayload(full, r.GetPayload())
}

func ia5StringFromPayload(full, payload []byte) (IA5StringValue, error) {
	s := string(payload)
	if err := validateIA5String(s); err != nil {
		return IA5StringValue{}, err
	}
	return IA5StringValue{rawBytes: full, value: s}, nil
}

func (r IA5StringValue) Tag() int          { return TagIA5String }
func (r IA5StringValue) TagName() string   { return TagNames[TagIA5String] }
func (r IA5StringValue) IsContainer() bool { return false }
func (r IA5StringValue) RawBytes() []byte  { return r.rawBytes }
func (r IA5StringValue) Value() string     { return r.value }
func (r IA5StringValue) Display() string   { return r.value }
func (r IA5StringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
