package der

/*
var.go contains global variables and constants used throughout this package.
*/

/*
ASN.1 tag number constants. These are the UNIVERSAL class tag numbers
this package recognizes; tag number 31 (the high-tag-number escape)
is deliberately absent since multi-byte tag numbers are not supported.
*/
const (
	invalidTag          = 0
	TagBoolean          = 1
	TagInteger          = 2
	TagBitString        = 3
	TagOctetString      = 4
	TagNull             = 5
	TagOID              = 6
	TagObjectDescriptor = 7
	TagExternal         = 8
	TagReal             = 9
	TagEnum             = 10
	TagEmbeddedPDV      = 11
	TagUTF8String       = 12
	TagRelativeOID      = 13
	TagSequence         = 16
	TagSet              = 17
	TagNumericString    = 18
	TagPrintableString  = 19
	TagT61String        = 20
	TagVideotexString   = 21
	TagIA5String        = 22
	TagUTCTime          = 23
	TagGeneralizedTime  = 24
	TagGraphicString    = 25
	TagVisibleString    = 26
	TagGeneralString    = 27
	TagUniversalString  = 28
	TagCharacterString  = 29
	TagBMPString        = 30
)

/*
ASN.1 class constants, decoded from bits 7-6 of the tag octet.
*/
const (
	invalidClass int = iota - 1
	ClassUniversal
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

/*
ClassNames facilitates access to string ASN.1 class names.
*/
var ClassNames = map[int]string{
	invalidClass:         "INVALID CLASS",
	ClassUniversal:       "UNIVERSAL",
	ClassApplication:     "APPLICATION",
	ClassContextSpecific: "CONTEXT SPECIFIC",
	ClassPrivate:         "PRIVATE",
}

/*
TagNames facilitates access to string ASN.1 tag names for every
UNIVERSAL class tag number this codec may encounter while walking a
tree, including tags for which no typed wrapper exists (REAL,
RELATIVE OID, EXTERNAL, EMBEDDED PDV, OBJECT DESCRIPTOR, CHARACTER
STRING). The reader must still be able to label those nodes.
*/
var TagNames = map[int]string{
	invalidTag:          "INVALID TAG",       //  0
	TagBoolean:          "BOOLEAN",           //  1
	TagInteger:          "INTEGER",           //  2
	TagBitString:        "BIT STRING",        //  3
	TagOctetString:      "OCTET STRING",      //  4
	TagNull:             "NULL",              //  5
	TagOID:              "OBJECT IDENTIFIER", //  6
	TagObjectDescriptor: "OBJECT DESCRIPTOR", //  7
	TagExternal:         "EXTERNAL",          //  8
	TagReal:             "REAL",              //  9
	TagEnum:             "ENUMERATED",        // 10
	TagEmbeddedPDV:      "EMBEDDED PDV",      // 11
	TagUTF8String:       "UTF8 STRING",       // 12
	TagRelativeOID:      "RELATIVE OID",      // 13
	TagSequence:         "SEQUENCE",          // 16
	TagSet:              "SET",               // 17
	TagNumericString:    "NUMERIC STRING",    // 18
	TagPrintableString:  "PRINTABLE STRING",  // 19
	TagT61String:        "T61 STRING",        // 20
	TagVideotexString:   "VIDEOTEX STRING",   // 21 -- obsolete
	TagIA5String:        "IA5 STRING",        // 22
	TagUTCTime:          "UTC TIME",          // 23
	TagGeneralizedTime:  "GENERALIZED TIME",  // 24
	TagGraphicString:    "GRAPHIC STRING",    // 25 -- deprecated
	TagVisibleString:    "VISIBLE STRING",    // 26
	TagGeneralString:    "GENERAL STRING",    // 27 -- deprecated
	TagUniversalString:  "UNIVERSAL STRING",  // 28
	TagCharacterString:  "CHARACTER STRING",  // 29
	TagBMPString:        "BMP STRING",        // 30
}

/*
CompoundNames facilitates access to string ASN.1 compound state names.
*/
var CompoundNames = map[bool]string{
	true:  "CONSTRUCTED",
	false: "PRIMITIVE",
}

/*
restrictedDescentTags holds the universal tag numbers that never
undergo opportunistic descent: the
BOOLEAN/INTEGER/NULL/OID/REAL/ENUMERATED/RELATIVE_OID set, every
string-valued universal tag, and the two time tags.
*/
var restrictedDescentTags = map[int]bool{
	TagBoolean:          true,
	TagInteger:          true,
	TagNull:             true,
	TagOID:              true,
	TagReal:             true,
	TagEnum:             true,
	TagRelativeOID:      true,
	TagObjectDescriptor: true,
	TagUTF8String:       true,
	TagNumericString:    true,
	TagPrintableString:  true,
	TagT61String:        true,
	TagVideotexString:   true,
	TagIA5String:        true,
	TagGraphicString:    true,
	TagVisibleString:    true,
	TagGeneralString:    true,
	TagUniversalString:  true,
	TagCharacterString:  true,
	TagBMPString:        true,
	TagUTCTime:          true,
	TagGeneralizedTime:  true,
}
