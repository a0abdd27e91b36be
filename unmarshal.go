package sdp

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/nostressdev/sdp/internal/logging"
)

// DefaultMaxSize bounds how much a Decoder reads when no limit is given.
const DefaultMaxSize = 64 << 10

// ErrTooLarge is returned by Decode when the input exceeds the size limit.
var ErrTooLarge = errors.New("sdp: message too large")

// Decoder reads one session description from an input stream.
type Decoder struct {
	r       io.Reader
	log     zerolog.Logger
	maxSize int64
}

type DecoderOption func(*Decoder)

// WithLogger sets the logger used to trace decoding at debug level.
func WithLogger(log zerolog.Logger) DecoderOption {
	return func(d *Decoder) {
		d.log = log
	}
}

// WithMaxSize limits the number of bytes Decode accepts. A value of zero or
// less removes the limit.
func WithMaxSize(n int64) DecoderOption {
	return func(d *Decoder) {
		d.maxSize = n
	}
}

func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{r: r, log: logging.Default(), maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decode reads the stream to its end and parses it as one session
// description.
func (d *Decoder) Decode() (*Session, error) {
	r := d.r
	if d.maxSize > 0 && d.maxSize < math.MaxInt64 {
		// one byte past the limit tells an oversized input from an exact fit
		r = io.LimitReader(d.r, d.maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "sdp: read")
	}
	if d.maxSize > 0 && int64(len(data)) > d.maxSize {
		d.log.Debug().Int64("limit", d.maxSize).Msg("session description exceeds size limit")
		return nil, errors.Wrapf(ErrTooLarge, "limit is %d bytes", d.maxSize)
	}

	s, err := Parse(string(data))
	if err != nil {
		var sdpErr *Error
		if errors.As(err, &sdpErr) {
			d.log.Debug().
				Str("kind", sdpErr.Kind.String()).
				Str("field", sdpErr.Field).
				Str("input", sdpErr.Input).
				Msg("session description rejected")
		}
		return nil, err
	}

	d.log.Debug().
		Int("size", len(data)).
		Int("times", s.Times.Len()).
		Int("media", len(s.MediaDescriptions)).
		Msg("session description decoded")
	return s, nil
}
