//go:build der_debug

package der

type loglevels struct {
	v *uint16
}

func newLoglevels() (bv loglevels) {
	bv.v = new(uint16)
	return
}

func (r loglevels) Int() int {
	var i int
	if r.v != nil {
		i = int(*r.v)
	}
	return i
}

func (r *loglevels) Shift(x ...int) loglevels {
	for _, xi := range x {
		r.shift(xi)
	}
	return *r
}

func (r *loglevels) Unshift(x ...int) loglevels {
	for _, xi := range x {
		r.unshift(xi)
	}
	return *r
}

func (r loglevels) None() loglevels {
	return r.Unshift(r.Max())
}

func (r *loglevels) All() loglevels {
	r.Shift(r.Max())
	return *r
}

func (r loglevels) Positive(x int) bool {
	return r.positive(x)
}

func (r *loglevels) shift(x int) {
	if r.v == nil {
		return
	}
	if r.isExtreme(x) {
		r.shiftExtremes(x)
		return
	}
	if !r.positive(x) {
		*r.v |= uint16(x)
	}
}

func (r loglevels) isExtreme(x int) bool {
	return x == r.Max() || x == 0
}

func (r loglevels) shiftExtremes(x int) {
	if x == r.Max() {
		*r.v = ^uint16(0)
	}
}

func (r *loglevels) unshift(x int) {
	if r.v == nil {
		return
	}
	if r.isExtreme(x) {
		r.unshiftExtremes(x)
		return
	}
	if r.positive(x) {
		*r.v &^= uint16(x)
	}
}

func (r loglevels) unshiftExtremes(x int) {
	if x == r.Max() {
		*r.v = 0
	}
}

func (r loglevels) positive(x int) (posi bool) {
	if r.v != nil {
		posi = (*r.v)&uint16(x) != 0
	}
	return
}

func (r loglevels) Max() int { return int(^uint16(0)) }
func (r loglevels) Min() int { return 0 }
