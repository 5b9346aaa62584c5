//go:build der_debug

package der

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "DER_DEBUG"

const coreTracerMask = EventEnter | EventInfo | EventExit

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu sync.Mutex
	w  io.Writer
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		w:  writer,
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.ll.Shift(int(ev)) }

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.ll.Unshift(int(ev)) }

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.ll.Positive(int(rec.Type)) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	fn := trimFuncName(rec.Func)

	switch rec.Type & coreTracerMask {
	case EventEnter:
		r.writeEnter(ts, fn, rec.Args)
	case EventExit:
		r.writeExit(ts, fn, rec.Ret)
	default:
		r.writeInfo(ts, fn, rec.Args)
	}
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool {
	return r.ll.Positive(int(e))
}

func trimFuncName(full string) string {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		return full[i+1:]
	}
	return full
}

func (r *DefaultTracer) writeEnter(ts, fn string, args []any) {
	io.WriteString(r.w, ts+" -> "+fn+"("+joinArgs(args)+")\n")
}

func (r *DefaultTracer) writeInfo(ts, fn string, args []any) {
	io.WriteString(r.w, ts+"    * "+fn+": "+joinArgs(args)+"\n")
}

func (r *DefaultTracer) writeExit(ts, fn string, rets []any) {
	io.WriteString(r.w, ts+" <- "+fn+" => "+joinArgs(rets)+"\n")
}

func joinArgs(args []any) string {
	strs := make([]string, 0, len(args))
	for _, a := range args {
		strs = append(strs, fmtArg(a))
	}
	return join(strs, ", ")
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time  time.Time
	Type  EventType
	Func  string
	Args  []any
	Ret   []any
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{} // default
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, ok := t.(levelTracer)
	if ok && !(lt.Enabled(level) || lt.Enabled(EventAll)) {
		return
	}

	pc, _, _, ok := runtime.Caller(2)
	fn := "unknown"
	if ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	if i := strings.LastIndex(fn, "."); i >= 0 {
		fn = fn[i+1:]
	}

	rec := TraceRecord{Time: time.Now(), Type: level, Func: fn}
	if level == EventExit {
		rec.Ret = args
	} else {
		rec.Args = args
	}
	t.Trace(rec)
}

func debugEnter(args ...any)  { debugEvent(EventEnter, args...) }
func debugExit(args ...any)   { debugEvent(EventExit, args...) }
func debugInfo(args ...any)   { debugEvent(EventInfo, args...) }
func debugIO(args ...any)     { debugEvent(EventIO, args...) }
func debugReader(args ...any) { debugEvent(EventReader, args...) }
func debugBuilder(args ...any) { debugEvent(EventBuilder, args...) }
func debugCodec(args ...any)  { debugEvent(EventCodec, args...) }
func debugTrace(args ...any)  { debugEvent(EventTrace, args...) }

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case int:
		s = itoa(v)
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case byte:
		s = fmtUint(uint64(v), 16)
	case []byte:
		s = hexEnc(v)
	case error:
		s = v.Error()
	case fmt.Stringer:
		s = v.String()
	default:
		s = "<unprintable>"
	}
	return
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		sp := split(evar, ",")
		var vars []int
		for _, s := range sp {
			if n, err := atoi(trimS(s)); err == nil {
				if n < 0 {
					vars = []int{int(EventAll)}
					break
				}
				vars = append(vars, n)
			}
		}

		ll := newLoglevels()
		for _, v := range vars {
			ll.Shift(v)
		}

		dt := NewDefaultTracer(os.Stderr)
		dt.ll = ll
		EnableDebug(dt)
		debugInfo("loglevels enabled: " + evar)
	}
}
