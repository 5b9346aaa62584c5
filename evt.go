package der

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags der_debug" flag.
*/

/*
EventType describes a specific kind of tracer event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags der_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter   EventType = 1 << iota //    1: Called-function begin
	EventInfo                          //    2: Interim function event
	EventExit                          //    4: Called function exit
	EventIO                            //    8: Called function inputs/outputs
	EventReader                        //   16: Tree reader navigation
	EventBuilder                       //   32: Builder append operations
	EventCodec                         //   64: OID/DateTime payload codec ops
	EventTrace                         //  128: Low-level ops
)
