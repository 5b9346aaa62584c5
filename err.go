package der

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "sync"

/*
Kind identifies which of the four error categories this package
raises: a mismatched tag, a malformed
DER byte sequence, a length or string that overflows the rules
this codec enforces, or a required argument that was never supplied.
*/
type Kind int

const (
	KindInvalidTag Kind = iota
	KindInvalidData
	KindOverflow
	KindArgNull
)

func (k Kind) String() string {
	switch k {
	case KindInvalidTag:
		return "INVALID_TAG"
	case KindInvalidData:
		return "INVALID_DATA"
	case KindOverflow:
		return "OVERFLOW"
	case KindArgNull:
		return "ARG_NULL"
	}
	return "UNKNOWN"
}

/*
codecError is the concrete error type returned by this package. Its
Kind is stable across wrapping so callers can branch with [errors.Is]
against the four sentinels below rather than string-matching.
*/
type codecError struct {
	kind Kind
	msg  string
}

func (e *codecError) Error() string { return e.kind.String() + ": " + e.msg }

func (e *codecError) Is(target error) bool {
	t, ok := target.(*codecError)
	return ok && t.kind == e.kind
}

/*
Sentinel errors suitable for [errors.Is] comparison. A returned error
always wraps one of these via a matching Kind, never the sentinel
itself, since sentinels carry no per-call detail.
*/
var (
	ErrInvalidTag  error = &codecError{kind: KindInvalidTag, msg: "tag mismatch"}
	ErrInvalidData error = &codecError{kind: KindInvalidData, msg: "malformed DER"}
	ErrOverflow    error = &codecError{kind: KindOverflow, msg: "value exceeds codec limit"}
	ErrArgNull     error = &codecError{kind: KindArgNull, msg: "required argument missing"}
)

var errCache sync.Map

func mkerrOf(kind Kind, parts ...any) error {
	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	key := kind.String() + ":" + msg
	if v, hit := errCache.Load(key); hit {
		return v.(error)
	}
	e := &codecError{kind: kind, msg: msg}
	errCache.Store(key, e)
	return e
}

func invalidTagf(parts ...any) error  { return mkerrOf(KindInvalidTag, parts...) }
func invalidDataf(parts ...any) error { return mkerrOf(KindInvalidData, parts...) }
func overflowf(parts ...any) error    { return mkerrOf(KindOverflow, parts...) }
func argNullf(parts ...any) error     { return mkerrOf(KindArgNull, parts...) }

func errorASN1Expect(want, got int, typ string) (err error) {
	switch typ {
	case "Tag":
		err = invalidTagf("ExpectTag: wrong tag: got ", got, " (", TagNames[got],
			"), want ", want, " (", TagNames[want], ")")
	case "Class":
		err = invalidTagf("ExpectClass: wrong class: got ", got, " (", ClassNames[got],
			"), want ", want, " (", ClassNames[want], ")")
	}
	return
}
