package sdp

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

// Attribute is one "a=" line. The concrete types below cover the
// attributes registered by RFC 8866 plus fmtp; any other name is kept as an
// OtherAttribute. A registered name with a missing or malformed value is a
// parse error.
type Attribute interface {
	AttributeName() string
	// AttributeValue returns the text after the colon, or false for a
	// property attribute written without one.
	AttributeValue() (string, bool)
}

// ParseAttribute parses an "a=" line.
func ParseAttribute(s string) (Attribute, error) {
	return parseLine(s, "attribute", attributeLine, newAttribute)
}

func attributeLine(s string) (tokenizer.KeyOptValue, string, error) {
	return tokenizer.TokenizeKeyOptValue(s, 'a')
}

// FormatAttribute renders a as an "a=" line without terminator.
func FormatAttribute(a Attribute) string {
	return render(func(b *buffer) { encodeAttribute(b, a) })
}

func encodeAttribute(b *buffer, a Attribute) {
	b.writeString("a=").writeString(a.AttributeName())
	if v, ok := a.AttributeValue(); ok {
		b.writeChar(':').writeString(v)
	}
}

func newAttribute(kv tokenizer.KeyOptValue) (Attribute, error) {
	name, value := kv.Key, kv.Value
	if value == "" {
		switch name {
		case "recvonly":
			return DirectionRecvonly, nil
		case "sendrecv":
			return DirectionSendrecv, nil
		case "sendonly":
			return DirectionSendonly, nil
		case "inactive":
			return DirectionInactive, nil
		}
	}
	a, err := newRegisteredAttribute(name, value)
	switch {
	case err == nil:
		return a, nil
	case errors.Is(err, errUnregistered):
		return OtherAttribute{Name: strings.Clone(name), Value: strings.Clone(value)}, nil
	default:
		return nil, parseError(name+" attribute", value, err)
	}
}

// errUnregistered marks a name, or a name and value combination, that has
// no typed form and is kept as an OtherAttribute.
var errUnregistered = errors.New("unregistered attribute")

// newRegisteredAttribute converts attributes with a typed form. Free text
// attributes without a value have none; typed ones require a value.
func newRegisteredAttribute(name, value string) (Attribute, error) {
	switch name {
	case "cat", "keywds", "tool", "charset", "sdplang", "lang":
		if value == "" {
			return nil, errUnregistered
		}
		return newTextAttribute(name, strings.Clone(value)), nil
	case "ptime", "maxptime", "framerate", "quality", "orient", "type", "rtpmap", "fmtp":
		if value == "" {
			return nil, errMissingValue
		}
		return newValueAttribute(name, value)
	}
	return nil, errUnregistered
}

func newTextAttribute(name, value string) Attribute {
	switch name {
	case "cat":
		return Cat(value)
	case "keywds":
		return Keywds(value)
	case "tool":
		return Tool(value)
	case "charset":
		return Charset(value)
	case "sdplang":
		return Sdplang(value)
	default:
		return Lang(value)
	}
}

func newValueAttribute(name, value string) (Attribute, error) {
	switch name {
	case "ptime":
		f, err := parseFloat32(value)
		return Ptime(f), err
	case "maxptime":
		f, err := parseFloat32(value)
		return Maxptime(f), err
	case "framerate":
		f, err := parseFloat32(value)
		return Framerate(f), err
	case "quality":
		q, err := strconv.ParseInt(value, 10, 32)
		return Quality(q), err
	case "orient":
		return parseOrientation(value)
	case "type":
		return parseConferenceType(value)
	case "rtpmap":
		return parseRtpmap(value)
	default:
		return parseFmtp(value)
	}
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("%s is not a finite number", s)
	}
	return float32(f), nil
}

func formatFloat32(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// OtherAttribute is any attribute without a dedicated type. An empty Value
// is a property attribute.
type OtherAttribute struct {
	Name  string
	Value string
}

func (a OtherAttribute) AttributeName() string { return a.Name }
func (a OtherAttribute) AttributeValue() (string, bool) {
	return a.Value, a.Value != ""
}
func (a OtherAttribute) String() string { return FormatAttribute(a) }

// Direction is one of the recvonly, sendrecv, sendonly and inactive
// property attributes.
type Direction uint8

const (
	DirectionRecvonly Direction = iota + 1
	DirectionSendrecv
	DirectionSendonly
	DirectionInactive
)

var directionNames = map[Direction]string{
	DirectionRecvonly: "recvonly",
	DirectionSendrecv: "sendrecv",
	DirectionSendonly: "sendonly",
	DirectionInactive: "inactive",
}

func (d Direction) AttributeName() string          { return directionNames[d] }
func (d Direction) AttributeValue() (string, bool) { return "", false }
func (d Direction) String() string                 { return FormatAttribute(d) }

type Cat string

func (c Cat) AttributeName() string          { return "cat" }
func (c Cat) AttributeValue() (string, bool) { return string(c), true }
func (c Cat) String() string                 { return FormatAttribute(c) }

type Keywds string

func (k Keywds) AttributeName() string          { return "keywds" }
func (k Keywds) AttributeValue() (string, bool) { return string(k), true }
func (k Keywds) String() string                 { return FormatAttribute(k) }

type Tool string

func (t Tool) AttributeName() string          { return "tool" }
func (t Tool) AttributeValue() (string, bool) { return string(t), true }
func (t Tool) String() string                 { return FormatAttribute(t) }

type Charset string

func (c Charset) AttributeName() string          { return "charset" }
func (c Charset) AttributeValue() (string, bool) { return string(c), true }
func (c Charset) String() string                 { return FormatAttribute(c) }

type Sdplang string

func (s Sdplang) AttributeName() string          { return "sdplang" }
func (s Sdplang) AttributeValue() (string, bool) { return string(s), true }
func (s Sdplang) String() string                 { return FormatAttribute(s) }

type Lang string

func (l Lang) AttributeName() string          { return "lang" }
func (l Lang) AttributeValue() (string, bool) { return string(l), true }
func (l Lang) String() string                 { return FormatAttribute(l) }

// Ptime is the packet duration in milliseconds.
type Ptime float32

func (p Ptime) AttributeName() string          { return "ptime" }
func (p Ptime) AttributeValue() (string, bool) { return formatFloat32(float32(p)), true }
func (p Ptime) String() string                 { return FormatAttribute(p) }

type Maxptime float32

func (m Maxptime) AttributeName() string          { return "maxptime" }
func (m Maxptime) AttributeValue() (string, bool) { return formatFloat32(float32(m)), true }
func (m Maxptime) String() string                 { return FormatAttribute(m) }

type Framerate float32

func (f Framerate) AttributeName() string          { return "framerate" }
func (f Framerate) AttributeValue() (string, bool) { return formatFloat32(float32(f)), true }
func (f Framerate) String() string                 { return FormatAttribute(f) }

type Quality int32

func (q Quality) AttributeName() string { return "quality" }
func (q Quality) AttributeValue() (string, bool) {
	return strconv.FormatInt(int64(q), 10), true
}
func (q Quality) String() string { return FormatAttribute(q) }

func (o Orientation) AttributeName() string          { return "orient" }
func (o Orientation) AttributeValue() (string, bool) { return o.String(), true }

func (c ConferenceType) AttributeName() string          { return "type" }
func (c ConferenceType) AttributeValue() (string, bool) { return c.String(), true }
