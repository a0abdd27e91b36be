package sdp

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

// Active is the "t=<start> <stop>" line. Times are NTP seconds; zero
// means unbounded.
type Active struct {
	Start uint64
	Stop  uint64
}

func ParseActive(s string) (Active, error) {
	return parseLine(s, "time", tokenizer.TokenizeActive, newActive)
}

func newActive(a tokenizer.Active) (Active, error) {
	start, err := strconv.ParseUint(a.Start, 10, 64)
	if err != nil {
		return Active{}, parseError("time start", a.Start, err)
	}
	stop, err := strconv.ParseUint(a.Stop, 10, 64)
	if err != nil {
		return Active{}, parseError("time stop", a.Stop, err)
	}
	return Active{Start: start, Stop: stop}, nil
}

func (a Active) String() string { return render(a.encode) }

func (a Active) encode(b *buffer) {
	b.writeString("t=").writeUint64(a.Start).writeSpace().writeUint64(a.Stop)
}

// Repeat is the "r=<interval> <duration> <offsets>" line.
type Repeat struct {
	Interval TypedTime
	Duration TypedTime
	Offsets  NonEmpty[TypedTime]
}

func ParseRepeat(s string) (Repeat, error) {
	return parseLine(s, "repeat", tokenizer.TokenizeRepeat, newRepeat)
}

func newRepeat(r tokenizer.Repeat) (Repeat, error) {
	interval, err := parseTypedTime(r.Interval)
	if err != nil {
		return Repeat{}, parseError("repeat interval", r.Interval, err)
	}
	duration, err := parseTypedTime(r.Duration)
	if err != nil {
		return Repeat{}, parseError("repeat duration", r.Duration, err)
	}
	offsets, err := mapNonEmpty(r.Offsets, "repeat offset", func(s string) (TypedTime, error) {
		t, err := parseTypedTime(s)
		if err != nil {
			return TypedTime{}, parseError("repeat offset", s, err)
		}
		return t, nil
	})
	if err != nil {
		return Repeat{}, err
	}
	return Repeat{Interval: interval, Duration: duration, Offsets: offsets}, nil
}

func (r Repeat) String() string { return render(r.encode) }

func (r Repeat) encode(b *buffer) {
	b.writeString("r=").
		writeString(r.Interval.String()).writeSpace().
		writeString(r.Duration.String()).writeSpace().
		writeString(joinStrings(r.Offsets.Slice(), " "))
}

// ZonePart is one adjustment of a "z=" line: from Adjustment (NTP seconds)
// on, Offset is added to the base time.
type ZonePart struct {
	Adjustment uint64
	Offset     TypedTime
}

func newZonePart(p tokenizer.ZonePart) (ZonePart, error) {
	adj, err := strconv.ParseUint(p.Adjustment, 10, 64)
	if err != nil {
		return ZonePart{}, parseError("zone adjustment time", p.Adjustment, err)
	}
	offset, err := parseTypedTime(p.Offset)
	if err != nil {
		return ZonePart{}, parseError("zone offset", p.Offset, err)
	}
	return ZonePart{Adjustment: adj, Offset: offset}, nil
}

func (p ZonePart) String() string {
	return strconv.FormatUint(p.Adjustment, 10) + " " + p.Offset.String()
}

// Zone is the "z=" line.
type Zone struct {
	Parts NonEmpty[ZonePart]
}

func ParseZone(s string) (Zone, error) {
	return parseLine(s, "zone", tokenizer.TokenizeZone, newZone)
}

func newZone(z tokenizer.Zone) (Zone, error) {
	parts, err := mapNonEmpty(z.Parts, "zone", newZonePart)
	if err != nil {
		return Zone{}, err
	}
	return Zone{Parts: parts}, nil
}

func (z Zone) String() string { return render(z.encode) }

func (z Zone) encode(b *buffer) {
	b.writeString("z=").writeString(joinStrings(z.Parts.Slice(), " "))
}

// Time is a time block: when the session is active, how it repeats and the
// time zone adjustments that apply.
type Time struct {
	Active  Active
	Repeats []Repeat
	Zone    *Zone
}

// ParseTime parses a "t=" line followed by its "r=" and "z=" lines.
func ParseTime(s string) (Time, error) {
	return parseLine(s, "time", tokenizer.TokenizeTime, newTime)
}

func newTime(t tokenizer.Time) (Time, error) {
	active, err := newActive(t.Active)
	if err != nil {
		return Time{}, err
	}
	repeats, err := mapAll(t.Repeats, newRepeat)
	if err != nil {
		return Time{}, err
	}
	zone, err := mapOptional(t.Zone, newZone)
	if err != nil {
		return Time{}, err
	}
	return Time{Active: active, Repeats: repeats, Zone: zone}, nil
}

// String renders every line of the block, each terminated by CRLF.
func (t Time) String() string { return render(t.encode) }

func (t Time) encode(b *buffer) {
	t.Active.encode(b)
	b.writeNewline()
	for _, r := range t.Repeats {
		r.encode(b)
		b.writeNewline()
	}
	if t.Zone != nil {
		t.Zone.encode(b)
		b.writeNewline()
	}
}

func joinStrings[T interface{ String() string }](items []T, sep string) string {
	return strings.Join(lo.Map(items, func(item T, _ int) string {
		return item.String()
	}), sep)
}
