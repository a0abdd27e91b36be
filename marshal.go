package sdp

import (
	"io"
	"strconv"
	"sync"
)

type buffer struct {
	data []byte
}

func (b *buffer) writeUint64(v uint64) *buffer {
	b.data = strconv.AppendUint(b.data, v, 10)
	return b
}

func (b *buffer) writeString(v string) *buffer {
	b.data = append(b.data, v...)
	return b
}

func (b *buffer) writeChar(char byte) *buffer {
	b.data = append(b.data, char)
	return b
}

func (b *buffer) writeNewline() *buffer {
	b.data = append(b.data, '\r', '\n')
	return b
}

func (b *buffer) writeSpace() *buffer {
	b.data = append(b.data, ' ')
	return b
}

var bufferPool = sync.Pool{
	New: func() interface{} { return &buffer{} },
}

func getBuffer() *buffer {
	return bufferPool.Get().(*buffer)
}

func putBuffer(b *buffer) {
	b.data = b.data[:0]
	bufferPool.Put(b)
}

// render runs fn against a pooled buffer and returns what it wrote.
func render(fn func(*buffer)) string {
	b := getBuffer()
	defer putBuffer(b)
	fn(b)
	return string(b.data)
}

// Encoder writes session descriptions to an output stream.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the canonical text of s, every line terminated by CRLF.
func (e *Encoder) Encode(s *Session) error {
	b := getBuffer()
	defer putBuffer(b)
	s.encode(b)
	return e.flush(b)
}

func (e *Encoder) flush(b *buffer) error {
	written := 0

	for written < len(b.data) {
		w, err := e.w.Write(b.data[written:])
		if err != nil {
			return err
		}
		written += w
	}

	return nil
}
