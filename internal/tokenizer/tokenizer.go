// Package tokenizer splits SDP text into an unvalidated tree of substrings
// that mirrors the grammar. Nodes only reference the input; conversion into
// typed values happens in the root package.
package tokenizer

import (
	"fmt"
	"strings"
)

// Error reports the field the tokenizer was working on when it stopped.
type Error struct {
	Field      string
	Input      string
	Incomplete bool
}

func (e *Error) Error() string {
	if e.Incomplete {
		return fmt.Sprintf("incomplete input: %s", e.Field)
	}
	return fmt.Sprintf("failed to tokenize %s: %s", e.Field, e.Input)
}

func fail(field, input string) error {
	l, _ := line(input)
	return &Error{Field: field, Input: l}
}

func incomplete(field string) error {
	return &Error{Field: field, Incomplete: true}
}

// line splits input at the first line terminator. CRLF, CR and LF all
// terminate a line; end of input terminates the last one.
func line(input string) (string, string) {
	i := strings.IndexAny(input, "\r\n")
	if i < 0 {
		return input, ""
	}
	if input[i] == '\r' && i+1 < len(input) && input[i+1] == '\n' {
		return input[:i], input[i+2:]
	}
	return input[:i], input[i+1:]
}

// prefixed consumes one line starting with prefix and returns its value.
func prefixed(input, prefix, field string) (string, string, error) {
	if input == "" {
		return "", input, incomplete(field)
	}
	if !strings.HasPrefix(input, prefix) {
		return "", input, fail(field, input)
	}
	value, rem := line(input[len(prefix):])
	return value, rem, nil
}

// End checks that nothing but line terminators is left after field.
func End(field, rem string) error {
	if strings.Trim(rem, "\r\n") != "" {
		return fail(field, strings.TrimLeft(rem, "\r\n"))
	}
	return nil
}

func optional[T any](input, prefix string, fn func(string) (T, string, error)) (*T, string, error) {
	if !strings.HasPrefix(input, prefix) {
		return nil, input, nil
	}
	v, rem, err := fn(input)
	if err != nil {
		return nil, input, err
	}
	return &v, rem, nil
}

func many0[T any](input, prefix string, fn func(string) (T, string, error)) ([]T, string, error) {
	var items []T
	for strings.HasPrefix(input, prefix) {
		v, rem, err := fn(input)
		if err != nil {
			return nil, input, err
		}
		items = append(items, v)
		input = rem
	}
	return items, input, nil
}

func many1[T any](input, prefix string, fn func(string) (T, string, error)) ([]T, string, error) {
	first, rem, err := fn(input)
	if err != nil {
		return nil, input, err
	}
	rest, rem, err := many0(rem, prefix, fn)
	if err != nil {
		return nil, input, err
	}
	return append([]T{first}, rest...), rem, nil
}
