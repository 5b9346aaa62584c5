package der

/*
ps.go contains the PrintableString typed value wrapper.
*/

/*
PrintableStringValue is the typed value wrapper over the
PrintableString universal tag, restricted to letters, digits, space,
and the punctuation set ' ( ) + , - . / : = ?
*/
type PrintableStringValue struct {
	rawBytes []byte
	value    string
}

func NewPrintableStringFromValue(s string) (PrintableStringValue, error) {
	if err := validatePrintableString(s); err != nil {
		return PrintableStringValue{}, err
	}
	return PrintableStringValue{rawBytes: wrapTLV(byte(TagPrintableString), []byte(s)), value: s}, nil
}

func NewPrintableStringFromBytes(raw []byte) (PrintableStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return PrintableStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagPrintableString)); err != nil {
		return PrintableStringValue{}, err
	}
	return printableStringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewPrintableStringFromReader(r *Reader) (PrintableStringValue, error) {
	if err := r.ExpectTag(byte(TagPrintableString)); err != nil {
		return PrintableStringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return printableStringFromPayload(full, r.GetPayload())
}

func printableStringFromPayload(full, payload []byte) (PrintableStringValue, error) {
	s := string(payload)
	if err := validatePrintableString(s); err != nil {
		return PrintableStringValue{}, err
	}
	return PrintableStringValue{rawBytes: full, value: s}, nil
}

func (r PrintableStringValue) Tag() int          { return TagPrintableString }
func (r PrintableStringValue) TagName() string   { return TagNames[TagPrintableString] }
func (r PrintableStringValue) IsContainer() bool { return false }
func (r PrintableStringValue) RawBytes() []byte  { return r.rawBytes }
func (r PrintableStringValue) Value() string     { return r.value }
func (r PrintableStringValue) Display() string   { return r.value }
func (r PrintableStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
