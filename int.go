package der

/*
int.go contains the INTEGER typed value wrapper.

Unlike OID's fixed-width arcs, INTEGER carries arbitrary magnitude, so
this wrapper is grounded on math/big rather than a
native int64: DER integers are unbounded in principle and a codec that
silently truncated at 64 bits would misrepresent data it could
otherwise decode faithfully.
*/

import "math/big"

/*
IntegerValue is the typed value wrapper over the INTEGER universal
tag, encoded and decoded as two's-complement, shortest-form big-endian
octets.
*/
type IntegerValue struct {
	rawBytes []byte
	value    *big.Int
}

/*
encodeTwosComplement renders v as the minimal big-endian two's
complement octet string DER requires: no leading 0x00 unless the
high bit of the following octet is set, and no leading 0xFF unless
the high bit of the following octet is clear.
*/
func encodeTwosComplement(v *big.Int) []byte {
	if v.Sign() == 0 {
		return []byte{0x00}
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}
		return b
	}

	// negative: smallest byte width n such that -2^(8n-1) <= v
	nBytes := 1
	limit := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(8*nBytes-1)))
	for v.Cmp(limit) < 0 {
		nBytes++
		limit = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(8*nBytes-1)))
	}
	twos := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8))
	twos.Add(twos, v)
	b := twos.Bytes()
	for len(b) < nBytes {
		b = append([]byte{0x00}, b...)
	}
	return b
}

func decodeTwosComplement(b []byte) *big.Int {
	v := new(big.Int)
	if len(b) == 0 {
		return v
	}
	if b[0]&0x80 == 0 {
		v.SetBytes(b)
		return v
	}

	twos := new(big.Int).SetBytes(b)
	full := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8))
	v.Sub(twos, full)
	return v
}

func NewIntegerFromValue(v *big.Int) IntegerValue {
	payload := encodeTwosComplement(v)
	return IntegerValue{rawBytes: wrapTLV(byte(TagInteger), payload), value: new(big.Int).Set(v)}
}

func NewIntegerFromInt64(v int64) IntegerValue {
	return NewIntegerFromValue(big.NewInt(v))
}

func NewIntegerFromBytes(raw []byte) (IntegerValue, error) {
	r, err := New(raw)
	if err != nil {
		return IntegerValue{}, err
	}
	if err = r.ExpectTag(byte(TagInteger)); err != nil {
		return IntegerValue{}, err
	}
	return integerFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewIntegerFromReader(r *Reader) (IntegerValue, error) {
	if err := r.ExpectTag(byte(TagInteger)); err != nil {
		return IntegerValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return integerFromPayload(full, r.GetPayload())
}

func integerFromPayload(full, payload []byte) (IntegerValue, error) {
	if len(payload) == 0 {
		return IntegerValue{}, invalidDataf("INTEGER payload must not be empty")
	}
	if len(payload) > 1 {
		lead, next := payload[0], payload[1]
		if (lead == 0x00 && next&0x80 == 0) || (lead == 0xFF && next&0x80 != 0) {
			return IntegerValue{}, invalidDataf("INTEGER payload is not minimally encoded")
		}
	}
	return IntegerValue{rawBytes: full, value: decodeTwosComplement(payload)}, nil
}

func (r IntegerValue) Tag() int          { return TagInteger }
func (r IntegerValue) TagName() string   { return TagNames[TagInteger] }
func (r IntegerValue) IsContainer() bool { return false }
func (r IntegerValue) RawBytes() []byte  { return r.rawBytes }
func (r IntegerValue) Value() *big.Int   { return r.value }
func (r IntegerValue) Display() string   { return r.value.String() }
func (r IntegerValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
