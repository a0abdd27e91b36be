package tokenizer

import "strings"

// Active is the "t=" line.
type Active struct {
	Start string
	Stop  string
}

// TokenizeActive consumes one "t=" line.
func TokenizeActive(input string) (Active, string, error) {
	const field = "time"
	v, rem, err := prefixed(input, "t=", field)
	if err != nil {
		return Active{}, input, err
	}
	parts, ok := fields(v, 2)
	if !ok {
		return Active{}, input, fail(field, input)
	}
	return Active{Start: parts[0], Stop: parts[1]}, rem, nil
}

// Repeat is the "r=" line. At least one offset is always present.
type Repeat struct {
	Interval string
	Duration string
	Offsets  []string
}

// TokenizeRepeat consumes one "r=" line.
func TokenizeRepeat(input string) (Repeat, string, error) {
	const field = "repeat"
	v, rem, err := prefixed(input, "r=", field)
	if err != nil {
		return Repeat{}, input, err
	}
	parts, ok := fields(v, 3)
	if !ok {
		return Repeat{}, input, fail(field, input)
	}
	return Repeat{
		Interval: parts[0],
		Duration: parts[1],
		Offsets:  strings.Split(parts[2], " "),
	}, rem, nil
}

// ZonePart is one "<adjustment time> <offset>" pair of a "z=" line.
type ZonePart struct {
	Adjustment string
	Offset     string
}

// Zone is the "z=" line. At least one pair is always present.
type Zone struct {
	Parts []ZonePart
}

// TokenizeZone consumes one "z=" line.
func TokenizeZone(input string) (Zone, string, error) {
	const field = "zone"
	v, rem, err := prefixed(input, "z=", field)
	if err != nil {
		return Zone{}, input, err
	}
	items := strings.Split(v, " ")
	if len(items)%2 != 0 {
		return Zone{}, input, fail(field, input)
	}
	parts := make([]ZonePart, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		parts = append(parts, ZonePart{Adjustment: items[i], Offset: items[i+1]})
	}
	return Zone{Parts: parts}, rem, nil
}

// Time is a time block: one "t=" line, its "r=" lines and an optional "z=".
type Time struct {
	Active  Active
	Repeats []Repeat
	Zone    *Zone
}

// TokenizeTime consumes one time block.
func TokenizeTime(input string) (Time, string, error) {
	active, rem, err := TokenizeActive(input)
	if err != nil {
		return Time{}, input, err
	}
	repeats, rem, err := many0(rem, "r=", TokenizeRepeat)
	if err != nil {
		return Time{}, input, err
	}
	zone, rem, err := optional(rem, "z=", TokenizeZone)
	if err != nil {
		return Time{}, input, err
	}
	return Time{Active: active, Repeats: repeats, Zone: zone}, rem, nil
}
