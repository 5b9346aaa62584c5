package der

import (
	"bytes"
	"testing"
	"time"
)

/*
TestUTCTime_nonPreciseEncoding confirms UTCTime encoding of
2024-01-02T03:04:05Z, non-precise.
*/
func TestUTCTime_nonPreciseEncoding(t *testing.T) {
	d := DateTime{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	v, err := NewUTCTimeFromValue(d, false)
	if err != nil {
		t.Fatalf("NewUTCTimeFromValue: %v", err)
	}
	want := []byte{0x17, 0x0D, 0x32, 0x34, 0x30, 0x31, 0x30, 0x32, 0x30, 0x33, 0x30, 0x34, 0x30, 0x35, 0x5A}
	if !bytes.Equal(v.RawBytes(), want) {
		t.Fatalf("encoded UTCTime = % x, want % x", v.RawBytes(), want)
	}
}

/*
TestGeneralizedTime_preciseEncoding confirms GeneralizedTime
encoding of 2050-06-15T12:00:00.250Z, precise.
*/
func TestGeneralizedTime_preciseEncoding(t *testing.T) {
	d := DateTime{Time: time.Date(2050, 6, 15, 12, 0, 0, 250_000_000, time.UTC)}
	v, err := NewGeneralizedTimeFromValue(d, true)
	if err != nil {
		t.Fatalf("NewGeneralizedTimeFromValue: %v", err)
	}
	want := []byte{
		0x18, 0x13,
		0x32, 0x30, 0x35, 0x30, 0x30, 0x36, 0x31, 0x35,
		0x31, 0x32, 0x30, 0x30, 0x30, 0x30, 0x2E, 0x32,
		0x35, 0x30, 0x5A,
	}
	if !bytes.Equal(v.RawBytes(), want) {
		t.Fatalf("encoded GeneralizedTime = % x, want % x", v.RawBytes(), want)
	}
}

/*
TestUTCTime_roundTripMillisecond confirms a UTC-expressed,
millisecond-precise DateTime survives decode(encode(d, precise=true))
exactly, to the millisecond.
*/
func TestUTCTime_roundTripMillisecond(t *testing.T) {
	d := DateTime{Time: time.Date(1999, 12, 31, 23, 59, 58, 750_000_000, time.UTC)}
	payload, err := EncodeUTCTimePayload(d, true)
	if err != nil {
		t.Fatalf("EncodeUTCTimePayload: %v", err)
	}
	got, err := DecodeUTCTimePayload(payload)
	if err != nil {
		t.Fatalf("DecodeUTCTimePayload: %v", err)
	}
	if !got.Time.Equal(d.Time) {
		t.Fatalf("round trip = %v, want %v", got.Time, d.Time)
	}
}

/*
TestUTCTime_centuryPivot confirms two-digit year 49 decodes to 2049,
year 50 decodes to 1950.
*/
func TestUTCTime_centuryPivot(t *testing.T) {
	d49, err := DecodeUTCTimePayload([]byte("490101000000Z"))
	if err != nil {
		t.Fatalf("decode yy=49: %v", err)
	}
	if d49.Time.Year() != 2049 {
		t.Fatalf("yy=49 decoded to year %d, want 2049", d49.Time.Year())
	}

	d50, err := DecodeUTCTimePayload([]byte("500101000000Z"))
	if err != nil {
		t.Fatalf("decode yy=50: %v", err)
	}
	if d50.Time.Year() != 1950 {
		t.Fatalf("yy=50 decoded to year %d, want 1950", d50.Time.Year())
	}
}

func TestRFCDateTime_picksUTCTimeBelow2050(t *testing.T) {
	d := DateTime{Time: time.Date(2049, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, tag, err := EncodeRFCDateTime(d, false)
	if err != nil {
		t.Fatalf("EncodeRFCDateTime: %v", err)
	}
	if tag != TagUTCTime {
		t.Fatalf("year 2049 should pick UTCTime, got tag %d", tag)
	}
}

func TestRFCDateTime_picksGeneralizedTimeAt2050(t *testing.T) {
	d := DateTime{Time: time.Date(2050, 1, 1, 0, 0, 0, 0, time.UTC)}
	_, tag, err := EncodeRFCDateTime(d, false)
	if err != nil {
		t.Fatalf("EncodeRFCDateTime: %v", err)
	}
	if tag != TagGeneralizedTime {
		t.Fatalf("year 2050 should pick GeneralizedTime, got tag %d", tag)
	}
}

/*
TestZoneOffset_encodeSignQuirk exercises the preserved encode quirk
the sign character is '-' when both zone components are
non-negative, and '+' otherwise.
*/
func TestZoneOffset_encodeSignQuirk(t *testing.T) {
	d := DateTime{
		Time: time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC),
		Zone: &ZoneOffset{Hours: 5, Minutes: 30},
	}
	payload, err := EncodeGeneralizedTimePayload(d, false)
	if err != nil {
		t.Fatalf("EncodeGeneralizedTimePayload: %v", err)
	}
	s := string(payload)
	if s[len(s)-5] != '-' {
		t.Fatalf("non-negative zone components must encode with '-', got %q", s)
	}
}

/*
TestZoneOffset_decodeForcedNegativeMinute exercises the preserved
decode quirk: the minute component is always parsed as negative,
regardless of the sign character read.
*/
func TestZoneOffset_decodeForcedNegativeMinute(t *testing.T) {
	d, err := DecodeGeneralizedTimePayload([]byte("20240304050607+0530"))
	if err != nil {
		t.Fatalf("DecodeGeneralizedTimePayload: %v", err)
	}
	if d.Zone.Hours != 5 {
		t.Fatalf("zone hours = %d, want 5", d.Zone.Hours)
	}
	if d.Zone.Minutes != -30 {
		t.Fatalf("zone minutes = %d, want -30 (forced-negative decode quirk)", d.Zone.Minutes)
	}
}

func TestUTCTime_outOfRangeYearRejected(t *testing.T) {
	d := DateTime{Time: time.Date(2060, 1, 1, 0, 0, 0, 0, time.UTC)}
	if _, err := EncodeUTCTimePayload(d, false); err == nil {
		t.Fatalf("year 2060 is out of UTCTime's representable range")
	}
}
