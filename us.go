package der

/*
us.go contains the UniversalString typed value wrapper,
the UCS-4 (4 bytes per code point, big-endian) universal string.
*/

import "encoding/binary"

/*
UniversalStringValue is the typed value wrapper over the
UniversalString universal tag.
*/
type UniversalStringValue struct {
	rawBytes []byte
	value    string
}

func encodeUCS4(s string) []byte {
	runes := []rune(s)
	out := make([]byte, 4*len(runes))
	for i, r := range runes {
		binary.BigEndian.PutUint32(out[i*4:], uint32(r))
	}
	return out
}

func decodeUCS4(payload []byte) (string, error) {
	if len(payload)%4 != 0 {
		return "", invalidDataf("UniversalString payload length must be a multiple of 4, got ", len(payload))
	}
	runes := make([]rune, len(payload)/4)
	for i := range runes {
		runes[i] = rune(binary.BigEndian.Uint32(payload[i*4:]))
	}
	return string(runes), nil
}

func NewUniversalStringFromValue(s string) UniversalStringValue {
	payload := encodeUCS4(s)
	return UniversalStringValue{rawBytes: wrapTLV(byte(TagUniversalString), payload), value: s}
}

func NewUniversalStringFromBytes(raw []byte) (UniversalStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return UniversalStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagUniversalString)); err != nil {
		return UniversalStringValue{}, err
	}
	return universalStringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewUniversalStringFromReader(r *Reader) (UniversalStringValue, error) {
	if err := r.ExpectTag(byte(TagUniversalString)); err != nil {
		return UniversalStringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return universalStringFromPayload(full, r.GetPayload())
}

func universalStringFromPayload(full, payload []byte) (UniversalStringValue, error) {
	s, err := decodeUCS4(payload)
	if err != nil {
		return UniversalStringValue{}, err
	}
	return UniversalStringValue{rawBytes: full, value: s}, nil
}

func (r UniversalStringValue) Tag() int          { return TagUniversalString }
func (r UniversalStringValue) TagName() string   { return TagNames[TagUniversalString] }
func (r UniversalStringValue) IsContainer() bool { return false }
func (r UniversalStringValue) RawBytes() []byte  { return r.rawBytes }
func (r UniversalStringValue) Value() string     { return r.value }
func (r UniversalStringValue) Display() string   { return r.value }
func (r UniversalStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
