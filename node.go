package der

/*
node.go contains the Node type: the reader's immutable view of a
single TLV at a cursor position.
*/

/*
Node describes one TLV the tree reader has decoded. All fields are
set once, at decode time, and never mutated afterward; navigating the
reader produces a new Node rather than editing the current one.
*/
type Node struct {
	// Tag is the raw tag octet (class + constructed bit + tag number).
	Tag byte

	// Class is bits 7-6 of Tag: one of [ClassUniversal], [ClassApplication],
	// [ClassContextSpecific], [ClassPrivate].
	Class int

	// TagNumber is bits 4-0 of Tag.
	TagNumber int

	// TagName is the human label derived from Class and TagNumber.
	TagName string

	// HeaderLength is the number of octets from the tag octet to the
	// start of the payload (1 tag octet + however many length octets).
	HeaderLength int

	// PayloadOffset and PayloadLength describe the value octets.
	PayloadOffset int
	PayloadLength int

	// FullLength is HeaderLength + PayloadLength.
	FullLength int

	// IsConstructed reports whether this node's payload is itself a
	// sequence of nested TLVs, whether because the tag octet says so,
	// because it is SEQUENCE/SET, or because opportunistic descent
	// found exactly one well-formed child filling the payload.
	IsConstructed bool

	// Offset is this node's start within the backing buffer.
	Offset int

	// NextOffset is where tree-walk order continues: into this node's
	// payload if IsConstructed, otherwise past it. 0 means EOF.
	NextOffset int

	// NextSiblingOffset is where the next node at the same depth
	// begins. 0 means end of level.
	NextSiblingOffset int
}

/*
String returns a compact diagnostic rendering of the receiver,
primarily useful under the debug tracer.
*/
func (n Node) String() string {
	return n.TagName + " @" + itoa(n.Offset) +
		" len=" + itoa(n.PayloadLength) +
		" constructed=" + bool2str(n.IsConstructed)
}

/*
IsContainer reports whether the node's content is itself a sequence
of child TLVs. It is an alias over IsConstructed kept for symmetry
with the typed wrappers' is_container attribute.
*/
func (n Node) IsContainer() bool { return n.IsConstructed }
