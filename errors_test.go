package sdp

import (
	"strconv"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	for _, tc := range []struct {
		err  *Error
		want string
	}{
		{&Error{Kind: KindIncomplete, Field: "origin"}, "sdp: incomplete input: origin"},
		{&Error{Kind: KindTokenize, Field: "media", Input: "m=audio"}, "sdp: failed to tokenize media: m=audio"},
		{&Error{Kind: KindParse, Field: "version", Input: "1"}, "sdp: failed to parse version: 1"},
		{parseError("version", "1", errUnknownValue), "sdp: failed to parse version: 1 (unknown value)"},
	} {
		require.EqualError(t, tc.err, tc.want)
	}
}

func TestErrorKinds(t *testing.T) {
	require.Equal(t, "tokenize", KindTokenize.String())
	require.Equal(t, "parse", KindParse.String())
	require.Equal(t, "incomplete", KindIncomplete.String())
	require.Equal(t, "ErrorKind(7)", ErrorKind(7).String())

	err := error(&Error{Kind: KindParse, Field: "f"})
	require.ErrorIs(t, err, ErrParse)
	require.NotErrorIs(t, err, ErrTokenize)
	require.NotErrorIs(t, err, ErrIncomplete)

	wrapped := errors.Wrap(err, "loading offer")
	require.ErrorIs(t, wrapped, ErrParse)

	var sdpErr *Error
	require.ErrorAs(t, wrapped, &sdpErr)
	require.Equal(t, "f", sdpErr.Field)
}

func TestErrorUnwrap(t *testing.T) {
	_, err := ParseOrigin("o=- x 1 IN IP4 127.0.0.1")
	require.ErrorIs(t, err, ErrParse)
	require.ErrorIs(t, err, strconv.ErrSyntax)

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	require.Equal(t, "x", numErr.Num)
}

func TestWrapTokenizer(t *testing.T) {
	_, err := Parse("v=0\r\n")
	var sdpErr *Error
	require.ErrorAs(t, err, &sdpErr)
	require.Equal(t, KindIncomplete, sdpErr.Kind)
	require.Equal(t, "origin", sdpErr.Field)
	require.Empty(t, sdpErr.Input)

	plain := errors.New("plain")
	require.Equal(t, plain, wrapTokenizer(plain))

	err = toFieldError("rtpmap attribute", "x", plain)
	require.ErrorAs(t, err, &sdpErr)
	require.Equal(t, KindParse, sdpErr.Kind)
	require.Equal(t, "rtpmap attribute", sdpErr.Field)
	require.ErrorIs(t, err, plain)
}
