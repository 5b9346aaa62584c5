package der

/*
bool.go contains the BOOLEAN typed value wrapper.
*/

/*
BooleanValue is the typed value wrapper over the BOOLEAN universal
tag. DER requires the encoded octet to be exactly 0x00 (false) or
0xFF (true); any other non-zero octet is rejected rather than
silently treated as true, per this codec's "always validate" stance.
*/
type BooleanValue struct {
	rawBytes []byte
	value    bool
}

func NewBooleanFromValue(v bool) BooleanValue {
	b := byte(0x00)
	if v {
		b = 0xFF
	}
	return BooleanValue{rawBytes: wrapTLV(byte(TagBoolean), []byte{b}), value: v}
}

func NewBooleanFromBytes(raw []byte) (BooleanValue, error) {
	r, err := New(raw)
	if err != nil {
		return BooleanValue{}, err
	}
	if err = r.ExpectTag(byte(TagBoolean)); err != nil {
		return BooleanValue{}, err
	}
	return booleanFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewBooleanFromReader(r *Reader) (BooleanValue, error) {
	if err := r.ExpectTag(byte(TagBoolean)); err != nil {
		return BooleanValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return booleanFromPayload(full, r.GetPayload())
}

func booleanFromPayload(full, payload []byte) (BooleanValue, error) {
	if len(payload) != 1 {
		return BooleanValue{}, invalidDataf("BOOLEAN payload must be exactly 1 octet, got ", len(payload))
	}
	switch payload[0] {
	case 0x00:
		return BooleanValue{rawBytes: full, value: false}, nil
	case 0xFF:
		return BooleanValue{rawBytes: full, value: true}, nil
	default:
		return BooleanValue{}, invalidDataf("BOOLEAN octet must be 0x00 or 0xFF, got ", int(payload[0]))
	}
}

func (r BooleanValue) Tag() int          { return TagBoolean }
func (r BooleanValue) TagName() string   { return TagNames[TagBoolean] }
func (r BooleanValue) IsContainer() bool { return false }
func (r BooleanValue) RawBytes() []byte  { return r.rawBytes }
func (r BooleanValue) Value() bool       { return r.value }
func (r BooleanValue) Display() string   { return bool2str(r.value) }
func (r BooleanValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
