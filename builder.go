package der

/*
builder.go contains the DER builder: a single-writer accumulator
that composes primitive and constructed values into a complete TLV,
mirroring the tree reader's tag/length conventions in reverse.

Every add_* method appends one child's fully encoded TLV to the
accumulator and returns the receiver for chaining. Errors are sticky:
once one is recorded, subsequent add_* calls become no-ops and
GetEncoded/Encode surface the first error recorded.
*/

import "math/big"

/*
Builder accumulates child TLVs to be wrapped under an outer tag by
GetEncoded or Encode. It is not safe for concurrent use.
*/
type Builder struct {
	buf []byte
	err error
}

/*
NewBuilder returns an empty [Builder].
*/
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) appendRaw(tlv []byte) *Builder {
	if b.err != nil {
		return b
	}
	debugBuilder(len(tlv), "bytes appended")
	b.buf = append(b.buf, tlv...)
	return b
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		debugBuilder(err)
		b.err = err
	}
	return b
}

/*
Err returns the first error recorded by a prior add_* call, or nil.
*/
func (b *Builder) Err() error { return b.err }

/*
Len returns the number of octets accumulated so far.
*/
func (b *Builder) Len() int { return len(b.buf) }

func (b *Builder) AddBoolean(v bool) *Builder {
	return b.appendRaw(NewBooleanFromValue(v).RawBytes())
}

func (b *Builder) AddInteger(v *big.Int) *Builder {
	return b.appendRaw(NewIntegerFromValue(v).RawBytes())
}

func (b *Builder) AddOctetString(v []byte) *Builder {
	return b.appendRaw(NewOctetStringFromValue(v).RawBytes())
}

/*
AddOctetStringBuilder wraps sub's accumulated payload as the content
of an OCTET STRING child.
*/
func (b *Builder) AddOctetStringBuilder(sub *Builder) *Builder {
	if sub.err != nil {
		return b.fail(sub.err)
	}
	return b.appendRaw(wrapTLV(byte(TagOctetString), sub.buf))
}

func (b *Builder) AddBitString(bits []byte, unusedBits int) *Builder {
	v, err := NewBitStringFromValue(bits, unusedBits)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

/*
AddBitStringBuilder wraps sub's accumulated payload as the content of
a BIT STRING child with zero unused bits.
*/
func (b *Builder) AddBitStringBuilder(sub *Builder) *Builder {
	if sub.err != nil {
		return b.fail(sub.err)
	}
	payload := append([]byte{0x00}, sub.buf...)
	return b.appendRaw(wrapTLV(byte(TagBitString), payload))
}

func (b *Builder) AddNull() *Builder {
	return b.appendRaw(NewNullValue().RawBytes())
}

func (b *Builder) AddOID(dotted string) *Builder {
	v, err := NewOIDFromDotted(dotted)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

func (b *Builder) AddEnumerated(v *big.Int) *Builder {
	return b.appendRaw(NewEnumeratedFromValue(v).RawBytes())
}

func (b *Builder) AddUTF8String(s string) *Builder {
	v, err := NewUTF8StringFromValue(s)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

func (b *Builder) AddNumericString(s string) *Builder {
	v, err := NewNumericStringFromValue(s)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

func (b *Builder) AddPrintableString(s string) *Builder {
	v, err := NewPrintableStringFromValue(s)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

func (b *Builder) AddIA5String(s string) *Builder {
	v, err := NewIA5StringFromValue(s)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

func (b *Builder) AddT61String(v []byte) *Builder {
	return b.appendRaw(NewT61StringFromValue(v).RawBytes())
}

func (b *Builder) AddVideotexString(v []byte) *Builder {
	return b.appendRaw(NewVideotexStringFromValue(v).RawBytes())
}

func (b *Builder) AddVisibleString(s string) *Builder {
	v, err := NewVisibleStringFromValue(s)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

func (b *Builder) AddUniversalString(s string) *Builder {
	return b.appendRaw(NewUniversalStringFromValue(s).RawBytes())
}

func (b *Builder) AddBMPString(s string) *Builder {
	return b.appendRaw(NewBMPStringFromValue(s).RawBytes())
}

func (b *Builder) AddUTCTime(d DateTime, precise bool) *Builder {
	v, err := NewUTCTimeFromValue(d, precise)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

func (b *Builder) AddGeneralizedTime(d DateTime, precise bool) *Builder {
	v, err := NewGeneralizedTimeFromValue(d, precise)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(v.RawBytes())
}

/*
AddRFCDateTime auto-picks UTCTime or GeneralizedTime by the 2050 rule
and appends the result.
*/
func (b *Builder) AddRFCDateTime(d DateTime, precise bool) *Builder {
	payload, tag, err := EncodeRFCDateTime(d, precise)
	if err != nil {
		return b.fail(err)
	}
	return b.appendRaw(wrapTLV(byte(tag), payload))
}

/*
AddSequence validates payload as a back-to-back run of DER TLVs, then
wraps it with the SEQUENCE tag (0x30) and appends it as a child.
*/
func (b *Builder) AddSequence(payload []byte) *Builder {
	if err := validateTLVSequence(payload); err != nil {
		return b.fail(err)
	}
	return b.appendRaw(wrapTLV(0x30, payload))
}

/*
AddSet validates payload as a back-to-back run of DER TLVs, then wraps
it with the SET tag (0x31) and appends it as a child.
*/
func (b *Builder) AddSet(payload []byte) *Builder {
	if err := validateTLVSequence(payload); err != nil {
		return b.fail(err)
	}
	return b.appendRaw(wrapTLV(0x31, payload))
}

/*
AddSequenceBuilder wraps sub's accumulated payload with the SEQUENCE
tag (composition form).
*/
func (b *Builder) AddSequenceBuilder(sub *Builder) *Builder {
	if sub.err != nil {
		return b.fail(sub.err)
	}
	return b.appendRaw(wrapTLV(0x30, sub.buf))
}

/*
AddSetBuilder wraps sub's accumulated payload with the SET tag
(composition form).
*/
func (b *Builder) AddSetBuilder(sub *Builder) *Builder {
	if sub.err != nil {
		return b.fail(sub.err)
	}
	return b.appendRaw(wrapTLV(0x31, sub.buf))
}

/*
AddImplicit performs IMPLICIT tagging to context-specific tag n
When mustEncode, payload is treated as raw content and
wrapped fresh under tag 0x80|n. Otherwise payload must already be a
complete TLV; only its leading tag octet is overwritten with 0x80|n,
preserving length and payload octets exactly.
*/
func (b *Builder) AddImplicit(n int, payload []byte, mustEncode bool) *Builder {
	tag := byte(0x80 | n)
	if mustEncode {
		return b.appendRaw(wrapTLV(tag, payload))
	}
	if len(payload) < 2 {
		return b.fail(invalidDataf("add_implicit: payload too short to be a TLV"))
	}
	rewritten := append([]byte{}, payload...)
	rewritten[0] = tag
	return b.appendRaw(rewritten)
}

/*
AddExplicit performs EXPLICIT tagging to context-specific tag n
mirroring AddImplicit with tag base 0xA0.
*/
func (b *Builder) AddExplicit(n int, payload []byte, mustEncode bool) *Builder {
	tag := byte(0xA0 | n)
	if mustEncode {
		return b.appendRaw(wrapTLV(tag, payload))
	}
	if len(payload) < 2 {
		return b.fail(invalidDataf("add_explicit: payload too short to be a TLV"))
	}
	rewritten := append([]byte{}, payload...)
	rewritten[0] = tag
	return b.appendRaw(rewritten)
}

/*
AddRaw appends an already-encoded TLV after validating that it parses
as exactly one complete TLV.
*/
func (b *Builder) AddRaw(tlv []byte) *Builder {
	r, err := New(tlv)
	if err != nil {
		return b.fail(err)
	}
	if r.Current().FullLength != len(tlv) {
		return b.fail(invalidDataf("add_raw: trailing bytes after TLV"))
	}
	return b.appendRaw(tlv)
}

/*
AddRawTagged wraps payload with outerTag and appends the result.
*/
func (b *Builder) AddRawTagged(outerTag byte, payload []byte) *Builder {
	return b.appendRaw(wrapTLV(outerTag, payload))
}

/*
GetEncoded returns outerTag ‖ length ‖ accumulated without mutating
the receiver.
*/
func (b *Builder) GetEncoded(outerTag byte) ([]byte, error) {
	if b.err != nil {
		return nil, b.err
	}
	return wrapTLV(outerTag, b.buf), nil
}

/*
Encode replaces the receiver's accumulated state with its own wrapped
form under outerTag and returns the receiver.
*/
func (b *Builder) Encode(outerTag byte) (*Builder, error) {
	if b.err != nil {
		return b, b.err
	}
	b.buf = wrapTLV(outerTag, b.buf)
	return b, nil
}
