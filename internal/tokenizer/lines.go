package tokenizer

import "strings"

var valueFields = map[byte]string{
	'v': "version",
	's': "session name",
	'i': "session information",
	'u': "uri",
	'e': "email",
	'p': "phone",
}

var keyValueFields = map[byte]string{
	'b': "bandwidth",
}

var keyOptValueFields = map[byte]string{
	'k': "key",
	'a': "attribute",
}

func fieldFor(fields map[byte]string, key byte) string {
	if f, ok := fields[key]; ok {
		return f
	}
	return string(key) + "= line"
}

// Value is a line carrying a single opaque value, such as "s=" or "e=".
type Value struct {
	Value string
}

// TokenizeValue consumes one "<key>=<value>" line.
func TokenizeValue(input string, key byte) (Value, string, error) {
	v, rem, err := prefixed(input, string(key)+"=", fieldFor(valueFields, key))
	if err != nil {
		return Value{}, input, err
	}
	return Value{Value: v}, rem, nil
}

func value(key byte) func(string) (Value, string, error) {
	return func(input string) (Value, string, error) {
		return TokenizeValue(input, key)
	}
}

// KeyValue is a "<key>=<name>:<value>" line with a mandatory value.
type KeyValue struct {
	Key   string
	Value string
}

// TokenizeKeyValue consumes one line whose value must contain a colon.
func TokenizeKeyValue(input string, key byte) (KeyValue, string, error) {
	field := fieldFor(keyValueFields, key)
	v, rem, err := prefixed(input, string(key)+"=", field)
	if err != nil {
		return KeyValue{}, input, err
	}
	k, val, ok := strings.Cut(v, ":")
	if !ok {
		return KeyValue{}, input, fail(field, input)
	}
	return KeyValue{Key: k, Value: val}, rem, nil
}

func keyValue(key byte) func(string) (KeyValue, string, error) {
	return func(input string) (KeyValue, string, error) {
		return TokenizeKeyValue(input, key)
	}
}

// KeyOptValue is a "<key>=<name>[:<value>]" line. An empty value after the
// colon is treated as absent.
type KeyOptValue struct {
	Key   string
	Value string
}

// TokenizeKeyOptValue consumes one line split on its first colon.
func TokenizeKeyOptValue(input string, key byte) (KeyOptValue, string, error) {
	field := fieldFor(keyOptValueFields, key)
	v, rem, err := prefixed(input, string(key)+"=", field)
	if err != nil {
		return KeyOptValue{}, input, err
	}
	k, val, _ := strings.Cut(v, ":")
	return KeyOptValue{Key: k, Value: val}, rem, nil
}

func keyOptValue(key byte) func(string) (KeyOptValue, string, error) {
	return func(input string) (KeyOptValue, string, error) {
		return TokenizeKeyOptValue(input, key)
	}
}

// Origin is the "o=" line split into its six fields.
type Origin struct {
	Username       string
	SessID         string
	SessVersion    string
	Nettype        string
	Addrtype       string
	UnicastAddress string
}

// TokenizeOrigin consumes the "o=" line.
func TokenizeOrigin(input string) (Origin, string, error) {
	const field = "origin"
	v, rem, err := prefixed(input, "o=", field)
	if err != nil {
		return Origin{}, input, err
	}
	parts, ok := fields(v, 6)
	if !ok {
		return Origin{}, input, fail(field, input)
	}
	return Origin{
		Username:       parts[0],
		SessID:         parts[1],
		SessVersion:    parts[2],
		Nettype:        parts[3],
		Addrtype:       parts[4],
		UnicastAddress: parts[5],
	}, rem, nil
}

// ConnectionAddress is "<base>[/<ttl>[/<number of addresses>]]".
type ConnectionAddress struct {
	Base    string
	TTL     string
	NumAddr string
}

// TokenizeConnectionAddress splits a connection address on slashes.
func TokenizeConnectionAddress(s string) (ConnectionAddress, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 || hasEmpty(parts[1:]) {
		return ConnectionAddress{}, fail("connection address", s)
	}
	addr := ConnectionAddress{Base: parts[0]}
	if len(parts) > 1 {
		addr.TTL = parts[1]
	}
	if len(parts) > 2 {
		addr.NumAddr = parts[2]
	}
	return addr, nil
}

// Connection is the "c=" line.
type Connection struct {
	Nettype  string
	Addrtype string
	Address  ConnectionAddress
}

// TokenizeConnection consumes one "c=" line.
func TokenizeConnection(input string) (Connection, string, error) {
	const field = "connection"
	v, rem, err := prefixed(input, "c=", field)
	if err != nil {
		return Connection{}, input, err
	}
	parts, ok := fields(v, 3)
	if !ok {
		return Connection{}, input, fail(field, input)
	}
	addr, err := TokenizeConnectionAddress(parts[2])
	if err != nil {
		return Connection{}, input, err
	}
	return Connection{Nettype: parts[0], Addrtype: parts[1], Address: addr}, rem, nil
}

// Port is "<port>[/<number of ports>]".
type Port struct {
	Port       string
	NumOfPorts string
}

// Media is the "m=" line. Fmt holds the whole format list.
type Media struct {
	Media string
	Port  Port
	Proto string
	Fmt   string
}

// TokenizeMedia consumes one "m=" line.
func TokenizeMedia(input string) (Media, string, error) {
	const field = "media"
	v, rem, err := prefixed(input, "m=", field)
	if err != nil {
		return Media{}, input, err
	}
	parts, ok := fields(v, 4)
	if !ok {
		return Media{}, input, fail(field, input)
	}
	port, num, ok := strings.Cut(parts[1], "/")
	if ok && num == "" {
		return Media{}, input, fail(field, input)
	}
	return Media{
		Media: parts[0],
		Port:  Port{Port: port, NumOfPorts: num},
		Proto: parts[2],
		Fmt:   parts[3],
	}, rem, nil
}

// fields splits s on single spaces into exactly n parts, the last one
// taking the rest of the line.
func fields(s string, n int) ([]string, bool) {
	parts := strings.SplitN(s, " ", n)
	if len(parts) != n {
		return nil, false
	}
	return parts, true
}

func hasEmpty(parts []string) bool {
	for _, p := range parts {
		if p == "" {
			return true
		}
	}
	return false
}
