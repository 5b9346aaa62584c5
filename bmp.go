package der

/*
bmp.go contains the BMPString typed value wrapper, the
UCS-2 (2 bytes per code unit, big-endian) Basic Multilingual Plane
string.
*/

import "unicode/utf16"

/*
BMPStringValue is the typed value wrapper over the BMPString
universal tag.
*/
type BMPStringValue struct {
	rawBytes []byte
	value    string
}

func encodeUCS2(s string) []byte {
	units := utf16Enc([]rune(s))
	out := make([]byte, 2*len(units))
	for i, u := range units {
		out[i*2] = byte(u >> 8)
		out[i*2+1] = byte(u)
	}
	return out
}

func decodeUCS2(payload []byte) (string, error) {
	if len(payload)%2 != 0 {
		return "", invalidDataf("BMPString payload length must be a multiple of 2, got ", len(payload))
	}
	units := make([]uint16, len(payload)/2)
	for i := range units {
		units[i] = uint16(payload[i*2])<<8 | uint16(payload[i*2+1])
	}
	return string(utf16.Decode(units)), nil
}

func NewBMPStringFromValue(s string) BMPStringValue {
	payload := encodeUCS2(s)
	return BMPStringValue{rawBytes: wrapTLV(byte(TagBMPString), payload), value: s}
}

func NewBMPStringFromBytes(raw []byte) (BMPStringValue, error) {
	r, err := New(raw)
	if err != nil {
		return BMPStringValue{}, err
	}
	if err = r.ExpectTag(byte(TagBMPString)); err != nil {
		return BMPStringValue{}, err
	}
	return bmpStringFromPayload(raw[:r.Current().FullLength], r.GetPayload())
}

func NewBMPStringFromReader(r *Reader) (BMPStringValue, error) {
	if err := r.ExpectTag(byte(TagBMPString)); err != nil {
		return BMPStringValue{}, err
	}
	full := append(append([]byte{}, r.GetHeader()...), r.GetPayload()...)
	return bmpStringFromPayload(full, r.GetPayload())
}

func bmpStringFromPayload(full, payload []byte) (BMPStringValue, error) {
	s, err := decodeUCS2(payload)
	if err != nil {
		return BMPStringValue{}, err
	}
	return BMPStringValue{rawBytes: full, value: s}, nil
}

func (r BMPStringValue) Tag() int          { return TagBMPString }
func (r BMPStringValue) TagName() string   { return TagNames[TagBMPString] }
func (r BMPStringValue) IsContainer() bool { return false }
func (r BMPStringValue) RawBytes() []byte  { return r.rawBytes }
func (r BMPStringValue) Value() string     { return r.value }
func (r BMPStringValue) Display() string   { return r.value }
func (r BMPStringValue) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
