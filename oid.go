package der

/*
oid.go contains the OID codec and the OBJECT IDENTIFIER typed
value wrapper.

Arcs are fixed-width uint64 rather than arbitrary-precision, per the
narrower rule this codec enforces.
*/

const maxOIDStringLen = 8192

/*
ObjectIdentifier is a dotted-decimal OID broken into its numeric
arcs, each an unsigned 64-bit value.
*/
type ObjectIdentifier []uint64

/*
String returns the dotted-decimal representation of the receiver.
*/
func (r ObjectIdentifier) String() string {
	parts := make([]string, len(r))
	for i, a := range r {
		parts[i] = fmtUint(a, 10)
	}
	return join(parts, ".")
}

/*
Validate enforces: at least 3 arcs, arc[0] in {0,1,2},
and arc[1] <= 39 when arc[0] is 0 or 1.
*/
func (r ObjectIdentifier) Validate() error {
	if len(r) < 3 {
		return invalidDataf("OID requires at least 3 arcs, got ", len(r))
	}
	if r[0] > 2 {
		return invalidDataf("OID first arc must be 0, 1 or 2, got ", int(r[0]))
	}
	if r[0] <= 1 && r[1] > 39 {
		return invalidDataf("OID second arc must be <= 39 when first arc is 0 or 1, got ", int(r[1]))
	}
	return nil
}

/*
ParseOID validates and parses a dotted-decimal string into an
[ObjectIdentifier]. The empty string is accepted and yields a
zero-length OID, an accepted carve-out for the empty OID.
*/
func ParseOID(dotted string) (ObjectIdentifier, error) {
	if len(dotted) > maxOIDStringLen {
		return nil, overflowf("OID string exceeds ", maxOIDStringLen, " characters")
	}
	if dotted == "" {
		return ObjectIdentifier{}, nil
	}

	parts := split(dotted, ".")
	arcs := make(ObjectIdentifier, len(parts))
	for i, p := range parts {
		v, err := puint(p, 10, 64)
		if err != nil {
			return nil, invalidDataf("OID arc ", i, " (", p, ") is not a valid unsigned decimal")
		}
		arcs[i] = v
	}

	if err := arcs.Validate(); err != nil {
		return nil, err
	}
	return arcs, nil
}

/*
EncodeOIDPayload renders dotted as the OID payload octets (the bytes
that follow the tag+length header): the first two arcs fuse
into a single value 40*arc[0]+arc[1], and that value and each
subsequent arc are written as base-128 VLQs. The fused value fits one
octet unless arc[0] is 2 and arc[1] exceeds 47.
*/
func EncodeOIDPayload(dotted string) ([]byte, error) {
	arcs, err := ParseOID(dotted)
	if err != nil {
		return nil, err
	}
	if len(arcs) == 0 {
		return []byte{}, nil
	}

	out := encodeBase128(40*arcs[0] + arcs[1])
	for _, v := range arcs[2:] {
		out = append(out, encodeBase128(v)...)
	}
	debugCodec(len(out), "OID payload octets")
	return out, nil
}

/*
DecodeOIDPayload parses OID payload octets back into a dotted-decimal
string.
*/
func DecodeOIDPayload(payload []byte) (string, error) {
	if len(payload) == 0 {
		return "", nil
	}

	first, n0, err := decodeBase128[uint64](payload)
	if err != nil {
		return "", err
	}
	var arcs []uint64
	switch {
	case first < 40:
		arcs = []uint64{0, first}
	case first < 80:
		arcs = []uint64{1, first - 40}
	default:
		arcs = []uint64{2, first - 80}
	}

	rest := payload[n0:]
	for len(rest) > 0 {
		v, n, err := decodeBase128[uint64](rest)
		if err != nil {
			return "", err
		}
		arcs = append(arcs, v)
		rest = rest[n:]
	}

	oid := ObjectIdentifier(arcs)
	if err := oid.Validate(); err != nil {
		return "", err
	}
	debugCodec(len(arcs), "OID arcs decoded")
	return oid.String(), nil
}

/*
OID is the typed value wrapper over the OBJECT IDENTIFIER
universal tag.
*/
type OID struct {
	rawBytes []byte
	dotted   string
}

/*
NewOIDFromDotted constructs an [OID] from a dotted-decimal string,
producing its encoded TLV form.
*/
func NewOIDFromDotted(dotted string) (OID, error) {
	payload, err := EncodeOIDPayload(dotted)
	if err != nil {
		return OID{}, err
	}
	return OID{rawBytes: wrapTLV(byte(TagOID), payload), dotted: dotted}, nil
}

/*
NewOIDFromBytes constructs an [OID] from a complete encoded TLV,
rejecting a tag mismatch with [ErrInvalidTag].
*/
func NewOIDFromBytes(raw []byte) (OID, error) {
	r, err := New(raw)
	if err != nil {
		return OID{}, err
	}
	if err = r.ExpectTag(byte(TagOID)); err != nil {
		return OID{}, err
	}
	dotted, err := DecodeOIDPayload(r.GetPayload())
	if err != nil {
		return OID{}, err
	}
	return OID{rawBytes: raw[:r.Current().FullLength], dotted: dotted}, nil
}

/*
NewOIDFromReader constructs an [OID] from the reader's current
position.
*/
func NewOIDFromReader(r *Reader) (OID, error) {
	if err := r.ExpectTag(byte(TagOID)); err != nil {
		return OID{}, err
	}
	dotted, err := DecodeOIDPayload(r.GetPayload())
	if err != nil {
		return OID{}, err
	}
	full := r.GetHeader()
	full = append(append([]byte{}, full...), r.GetPayload()...)
	return OID{rawBytes: full, dotted: dotted}, nil
}

func (r OID) Tag() int            { return TagOID }
func (r OID) TagName() string     { return TagNames[TagOID] }
func (r OID) IsContainer() bool   { return false }
func (r OID) RawBytes() []byte    { return r.rawBytes }
func (r OID) Dotted() string      { return r.dotted }
func (r OID) Display() string     { return r.dotted }
func (r OID) Format(enc string) string {
	return formatRaw(r.rawBytes, enc)
}
