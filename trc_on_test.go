//go:build der_debug

package der

import "testing"

func TestLoglevels_shiftAndUnshift(t *testing.T) {
	bits := newLoglevels()
	bits.Shift(int(EventEnter), int(EventReader))
	if !bits.Positive(int(EventEnter)) || !bits.Positive(int(EventReader)) {
		t.Fatalf("expected EventEnter and EventReader to be enabled")
	}
	bits.Unshift(int(EventEnter))
	if bits.Positive(int(EventEnter)) {
		t.Fatalf("EventEnter should have been disabled")
	}
}

func TestLoglevels_allAndNone(t *testing.T) {
	bits := newLoglevels()
	bits.All()
	if !bits.Positive(int(EventCodec)) {
		t.Fatalf("All() must enable every level")
	}
	bits.None()
	if bits.Positive(int(EventCodec)) {
		t.Fatalf("None() must disable every level")
	}
}

func TestDefaultTracer_tracesEnabledLevels(t *testing.T) {
	var buf stringWriter
	dt := NewDefaultTracer(&buf)
	dt.EnableLevel(EventInfo)
	if !dt.Enabled(EventInfo) {
		t.Fatalf("EventInfo should be enabled")
	}
	EnableDebug(dt)
	defer DisableDebug()
	debugInfo("test message")
	if buf.s == "" {
		t.Fatalf("expected a trace line to be written")
	}
}

type stringWriter struct{ s string }

func (w *stringWriter) Write(p []byte) (int, error) {
	w.s += string(p)
	return len(p), nil
}
