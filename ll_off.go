//go:build !der_debug

package der

type loglevels struct{}

func newLoglevels() (_ loglevels)               { return loglevels{} }
func (_ loglevels) Int() int                    { return 0 }
func (_ *loglevels) Shift(_ ...int) loglevels   { return loglevels{} }
func (_ loglevels) None() loglevels             { return loglevels{} }
func (_ *loglevels) All() loglevels             { return loglevels{} }
func (_ *loglevels) Unshift(_ ...int) loglevels { return loglevels{} }
func (_ loglevels) Positive(_ int) bool         { return false }
func (_ *loglevels) shift(_ int)                {}
func (_ loglevels) isExtreme(_ int) bool        { return false }
func (_ loglevels) shiftExtremes(_ int)         {}
func (_ *loglevels) unshift(_ int)              {}
func (_ loglevels) unshiftExtremes(_ int)       {}
func (_ loglevels) positive(_ int) bool         { return false }
func (_ loglevels) Max() int                    { return 0 }
func (_ loglevels) Min() int                    { return 0 }
