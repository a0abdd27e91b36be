package sdp

import (
	"strconv"
	"strings"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

// parseLine tokenizes a single line or block with tok, rejects anything left
// after it except line terminators, and converts the result with build.
func parseLine[N, T any](s, field string, tok func(string) (N, string, error), build func(N) (T, error)) (T, error) {
	var zero T
	node, rem, err := tok(s)
	if err != nil {
		return zero, wrapTokenizer(err)
	}
	if err := tokenizer.End(field, rem); err != nil {
		return zero, wrapTokenizer(err)
	}
	return build(node)
}

func valueLine(key byte) func(string) (tokenizer.Value, string, error) {
	return func(s string) (tokenizer.Value, string, error) {
		return tokenizer.TokenizeValue(s, key)
	}
}

// ParseVersion parses a "v=" line.
func ParseVersion(s string) (Version, error) {
	return parseLine(s, "version", valueLine('v'), newVersion)
}

func newVersion(v tokenizer.Value) (Version, error) {
	if v.Value != "0" {
		return 0, parseError("version", v.Value, errUnknownValue)
	}
	return Version0, nil
}

func (v Version) String() string { return render(v.encode) }

func (v Version) encode(b *buffer) {
	b.writeString("v=").writeUint64(uint64(v))
}

// SessionName is the "s=" line.
type SessionName string

func ParseSessionName(s string) (SessionName, error) {
	return parseLine(s, "session name", valueLine('s'), newSessionName)
}

func newSessionName(v tokenizer.Value) (SessionName, error) {
	return SessionName(strings.Clone(v.Value)), nil
}

func (n SessionName) String() string { return "s=" + string(n) }

// SessionInformation is the "i=" line, at session or media level.
type SessionInformation string

func ParseSessionInformation(s string) (SessionInformation, error) {
	return parseLine(s, "session information", valueLine('i'), newSessionInformation)
}

func newSessionInformation(v tokenizer.Value) (SessionInformation, error) {
	return SessionInformation(strings.Clone(v.Value)), nil
}

func (i SessionInformation) String() string { return "i=" + string(i) }

type URI string

func ParseURI(s string) (URI, error) {
	return parseLine(s, "uri", valueLine('u'), newURI)
}

func newURI(v tokenizer.Value) (URI, error) {
	return URI(strings.Clone(v.Value)), nil
}

func (u URI) String() string { return "u=" + string(u) }

type Email string

func ParseEmail(s string) (Email, error) {
	return parseLine(s, "email", valueLine('e'), newEmail)
}

func newEmail(v tokenizer.Value) (Email, error) {
	return Email(strings.Clone(v.Value)), nil
}

func (e Email) String() string { return "e=" + string(e) }

type Phone string

func ParsePhone(s string) (Phone, error) {
	return parseLine(s, "phone", valueLine('p'), newPhone)
}

func newPhone(v tokenizer.Value) (Phone, error) {
	return Phone(strings.Clone(v.Value)), nil
}

func (p Phone) String() string { return "p=" + string(p) }

// Bandwidth is a "b=<bwtype>:<bandwidth>" line. The value is in kilobits
// per second for the registered CT and AS types.
type Bandwidth struct {
	Type  Bwtype
	Value uint32
}

func ParseBandwidth(s string) (Bandwidth, error) {
	return parseLine(s, "bandwidth", bandwidthLine, newBandwidth)
}

func bandwidthLine(s string) (tokenizer.KeyValue, string, error) {
	return tokenizer.TokenizeKeyValue(s, 'b')
}

func newBandwidth(kv tokenizer.KeyValue) (Bandwidth, error) {
	v, err := strconv.ParseUint(kv.Value, 10, 32)
	if err != nil {
		return Bandwidth{}, parseError("bandwidth value", kv.Value, err)
	}
	return Bandwidth{Type: Bwtype(strings.Clone(kv.Key)), Value: uint32(v)}, nil
}

func (bw Bandwidth) String() string { return render(bw.encode) }

func (bw Bandwidth) encode(b *buffer) {
	b.writeString("b=").writeString(string(bw.Type)).writeChar(':').writeUint64(uint64(bw.Value))
}

// Key is the "k=<method>[:<encryption key>]" line. An empty Key renders
// the method alone.
type Key struct {
	Method KeyMethod
	Key    string
}

func ParseKey(s string) (Key, error) {
	return parseLine(s, "key", keyLine, newKey)
}

func keyLine(s string) (tokenizer.KeyOptValue, string, error) {
	return tokenizer.TokenizeKeyOptValue(s, 'k')
}

func newKey(kv tokenizer.KeyOptValue) (Key, error) {
	return Key{Method: KeyMethod(strings.Clone(kv.Key)), Key: strings.Clone(kv.Value)}, nil
}

func (k Key) String() string { return render(k.encode) }

func (k Key) encode(b *buffer) {
	b.writeString("k=").writeString(string(k.Method))
	if k.Key != "" {
		b.writeChar(':').writeString(k.Key)
	}
}
