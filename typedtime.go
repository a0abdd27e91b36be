package sdp

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimeUnit is the suffix a typed time was written with.
type TimeUnit uint8

const (
	UnitNone TimeUnit = iota
	UnitSeconds
	UnitMinutes
	UnitHours
	UnitDays
)

var unitSuffixes = map[byte]TimeUnit{
	's': UnitSeconds,
	'm': UnitMinutes,
	'h': UnitHours,
	'd': UnitDays,
}

func (u TimeUnit) Duration() time.Duration {
	switch u {
	case UnitMinutes:
		return time.Minute
	case UnitHours:
		return time.Hour
	case UnitDays:
		return 24 * time.Hour
	default:
		return time.Second
	}
}

func (u TimeUnit) String() string {
	switch u {
	case UnitSeconds:
		return "s"
	case UnitMinutes:
		return "m"
	case UnitHours:
		return "h"
	case UnitDays:
		return "d"
	default:
		return ""
	}
}

// TypedTime is a signed duration used by "r=" and "z=" lines, such as
// "7d", "-1h" or "3600". The unit is kept so the value renders as written.
// Duration must be a whole multiple of Unit; String truncates otherwise.
type TypedTime struct {
	Duration time.Duration
	Unit     TimeUnit
}

// ParseTypedTime parses a number with an optional s, m, h or d suffix.
func ParseTypedTime(s string) (TypedTime, error) {
	t, err := parseTypedTime(s)
	if err != nil {
		return TypedTime{}, parseError("typed time", s, err)
	}
	return t, nil
}

func parseTypedTime(s string) (TypedTime, error) {
	if s == "" {
		return TypedTime{}, errMissingValue
	}
	unit, digits := UnitNone, s
	if u, ok := unitSuffixes[s[len(s)-1]]; ok {
		unit, digits = u, s[:len(s)-1]
	}
	if strings.HasPrefix(digits, "+") {
		return TypedTime{}, errors.Errorf("%s has an explicit sign", s)
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return TypedTime{}, errors.Wrap(err, "invalid number")
	}
	scale := int64(unit.Duration())
	if n > math.MaxInt64/scale || n < math.MinInt64/scale {
		return TypedTime{}, errors.Errorf("%s out of range", s)
	}
	return TypedTime{Duration: time.Duration(n * scale), Unit: unit}, nil
}

func (t TypedTime) String() string {
	return strconv.FormatInt(int64(t.Duration/t.Unit.Duration()), 10) + t.Unit.String()
}
