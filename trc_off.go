//go:build !der_debug

package der

type DefaultTracer struct{}

func debugEnter(_ ...any)   {}
func debugExit(_ ...any)    {}
func debugEvent(_ EventType, _ ...any) {}
func debugInfo(_ ...any)    {}
func debugIO(_ ...any)      {}
func debugReader(_ ...any)  {}
func debugBuilder(_ ...any) {}
func debugCodec(_ ...any)   {}
func debugTrace(_ ...any)   {}
