package sdp

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

var (
	// ErrTokenize matches errors raised while splitting input into lines and fields.
	ErrTokenize = errors.New("sdp: tokenize error")
	// ErrParse matches errors raised while converting a field into its typed value.
	ErrParse = errors.New("sdp: parse error")
	// ErrIncomplete matches errors raised when input ends before a required line.
	ErrIncomplete = errors.New("sdp: incomplete input")
)

// ErrorKind tells which stage rejected the input.
type ErrorKind int

const (
	// KindTokenize: a line or field did not match the grammar.
	KindTokenize ErrorKind = iota
	// KindParse: a field matched but its value is invalid.
	KindParse
	// KindIncomplete: the input ended before a required line.
	KindIncomplete
)

func (k ErrorKind) String() string {
	switch k {
	case KindTokenize:
		return "tokenize"
	case KindParse:
		return "parse"
	case KindIncomplete:
		return "incomplete"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error describes the first failure met while reading a session description.
// Field names the grammar element, Input holds the text that was rejected.
type Error struct {
	Kind  ErrorKind
	Field string
	Input string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIncomplete:
		return fmt.Sprintf("sdp: incomplete input: %s", e.Field)
	case KindParse:
		if e.Err != nil {
			return fmt.Sprintf("sdp: failed to parse %s: %s (%v)", e.Field, e.Input, e.Err)
		}
		return fmt.Sprintf("sdp: failed to parse %s: %s", e.Field, e.Input)
	default:
		return fmt.Sprintf("sdp: failed to tokenize %s: %s", e.Field, e.Input)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrTokenize:
		return e.Kind == KindTokenize
	case ErrParse:
		return e.Kind == KindParse
	case ErrIncomplete:
		return e.Kind == KindIncomplete
	}
	return false
}

func parseError(field, input string, cause error) *Error {
	return &Error{Kind: KindParse, Field: field, Input: input, Err: cause}
}

// wrapTokenizer lifts an internal tokenizer error into the public error type.
func wrapTokenizer(err error) error {
	var tokErr *tokenizer.Error
	if !errors.As(err, &tokErr) {
		return err
	}
	if tokErr.Incomplete {
		return &Error{Kind: KindIncomplete, Field: tokErr.Field}
	}
	return &Error{Kind: KindTokenize, Field: tokErr.Field, Input: tokErr.Input}
}

var (
	errUnknownValue = errors.New("unknown value")
	errMissingValue = errors.New("missing value")
)

// toFieldError reports err against field unless it already came from the
// tokenizer, which names its own field.
func toFieldError(field, input string, err error) error {
	var tokErr *tokenizer.Error
	if errors.As(err, &tokErr) {
		return wrapTokenizer(err)
	}
	return parseError(field, input, err)
}
