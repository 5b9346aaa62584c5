package der

/*
enum.go contains the ENUMERATED typed value wrapper.

ENUMERATED shares INTEGER's two's-complement encoding exactly; it is
kept as a distinct wrapper type rather than a type alias so that
Tag()/TagName() report the correct universal tag.
*/

import "math/big"

/*
EnumeratedValue is the typed value wrapper over the ENUMERATED
universal tag.
*/
type EnumeratedValue struct {
	rawBytes []byte
	value    *big.Int
}

func NewEnumeratedFromValue(v *big.Int) EnumeratedValue {
	payload := encodeTwosComplement(v)
	return EnumeratedValue{rawBytes: wrapTLV(byte(TagEnum), payload), value: new(big.Int).Set(v)}
}

func NewEnumeratedFromInt(v int) EnumeratedValue {
	return NewEnumeratedFromValue(big.NewInt(int64(v)))
}

func NewEnumeratedFromBytes(raw []byte) (EnumeratedValue, error) {
	r, err := New(raw)
	if err != nil {
		return EnumeratedValue{}, err
	}
	if err = r.ExpectTag(byte(TagEnum)); err != nil {
		return EnumeratedValue{}, err
	}
	iv, err := integerFromPayload(raw[:r.Current().FullLength], r.GetPayload())
	if err != nil {
		return EnumeratedValue{}, err
	}
	return EnumeratedValue{rawBytes: iv.rawBytes, value: iv.value}, nil
}

func NewEnumeratedFromReader(r *Reader) (EnumeratedValue, error) {
	if err := r.ExpectTag(byte(TagEnum)); err != nil {
		return EnumeratedValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	iv, err := integerFromPayload(full, r.GetPayload())
	if err != nil {
		return EnumeratedValue{}, err
	}
	return EnumeratedValue{rawBytes: iv.rawBytes, value: iv.value}, nil
}

func (r EnumeratedValue) Tag() int          { return TagEnum }
func (r EnumeratedValue) TagName() string   { return TagNames[TagEnum] }
func (r EnumeratedValue) IsContainer() bool { return false }
func (r EnumeratedValue) RawBytes() []byte  { return r.rawBytes }
func (r EnumeratedValue) Value() *big.Int   { return r.value }
func (r EnumeratedValue) Display() string   { return r.value.String() }
func (r EnumeratedValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
