package sdp

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	pionsdp "github.com/pion/sdp/v3"
	gosdp "github.com/pixelbender/go-sdp/sdp"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	for _, v := range testVectors {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			var buf bytes.Buffer

			e := NewEncoder(&buf)
			if err := e.Encode(v.Session); err != nil {
				t.Fatal(err)
			}

			want := crlf(v.Data)
			if !cmp.Equal(buf.String(), want) {
				t.Fatalf("bad Session, got: %q, expected: %q, diff: %v", buf.String(), want, cmp.Diff(buf.String(), want))
			}
			require.Equal(t, want, v.Session.String())
			require.Equal(t, []byte(want), v.Session.Bytes())
		})
	}
}

func TestMarshalCanonicalises(t *testing.T) {
	in := "v=0\no=- 1 1 IN IP4 127.0.0.1\rs=-\r\nt=0 0\n\n\r\n"
	sess, err := Parse(in)
	require.NoError(t, err)
	require.Equal(t, "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nt=0 0\r\n", sess.String())

	sess, err = Parse("v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nt=0 0\r\nr=1d -0 -0m\r\n")
	require.NoError(t, err)
	require.Equal(t, "v=0\r\no=- 1 1 IN IP4 127.0.0.1\r\ns=-\r\nt=0 0\r\nr=1d 0 0m\r\n", sess.String())
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, bytes.ErrTooLarge
	}
	n := len(p)
	if n > w.n {
		n = w.n
	}
	w.n -= n
	return n, nil
}

func TestEncodeWriteError(t *testing.T) {
	err := NewEncoder(&failingWriter{n: 10}).Encode(testVectors[0].Session)
	require.ErrorIs(t, err, bytes.ErrTooLarge)
}

func FuzzEncode(f *testing.F) {
	for _, v := range testVectors {
		f.Add(v.Data)
		f.Add(crlf(v.Data))
	}
	f.Fuzz(func(t *testing.T, data string) {
		sess, err := NewDecoder(strings.NewReader(data), WithMaxSize(0)).Decode()
		if err != nil {
			return
		}

		var buf bytes.Buffer
		if err := NewEncoder(&buf).Encode(sess); err != nil {
			t.Fatal(err)
		}

		again, err := Parse(buf.String())
		if err != nil {
			t.Fatalf("canonical text does not parse: %v\n%q", err, buf.String())
		}
		if diff := cmp.Diff(sess, again, cmpOpts...); diff != "" {
			t.Fatalf("round trip changed the session (-first +second):\n%s", diff)
		}
		if again.String() != buf.String() {
			t.Fatalf("canonical text is not stable, got: %q, expected: %q", again.String(), buf.String())
		}
	})
}

var ntpEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

func ntpTime(sec uint64) time.Time {
	if sec == 0 {
		return time.Time{}
	}
	return ntpEpoch.Add(time.Duration(sec) * time.Second)
}

func toGoConnection(c Connection) *gosdp.Connection {
	out := &gosdp.Connection{
		Network: c.Nettype.String(),
		Type:    c.Addrtype.String(),
		Address: c.Address.Base.String(),
	}
	if c.Address.TTL != nil {
		out.TTL = int(*c.Address.TTL)
	}
	if c.Address.NumAddr != nil {
		out.AddressNum = int(*c.Address.NumAddr)
	}
	return out
}

func toGoBandwidths(in []Bandwidth) []*gosdp.Bandwidth {
	return lo.Map(in, func(b Bandwidth, _ int) *gosdp.Bandwidth {
		return &gosdp.Bandwidth{Type: string(b.Type), Value: int(b.Value)}
	})
}

func toGoKeys(k *Key) []*gosdp.Key {
	if k == nil {
		return nil
	}
	return []*gosdp.Key{{Method: string(k.Method), Value: k.Key}}
}

func toGoAttributes(in []Attribute) gosdp.Attributes {
	return lo.Map(in, func(a Attribute, _ int) *gosdp.Attr {
		value, _ := a.AttributeValue()
		return gosdp.NewAttr(a.AttributeName(), value)
	})
}

// toGoSDP builds the equivalent go-sdp model so both encoders render the
// same sessions. go-sdp keeps a single t= line, so only the first time
// block is carried over.
func toGoSDP(s *Session) *gosdp.Session {
	out := &gosdp.Session{
		Version: int(s.Version),
		Origin: &gosdp.Origin{
			Username:       s.Origin.Username,
			SessionID:      int64(s.Origin.SessionID),
			SessionVersion: int64(s.Origin.SessionVersion),
			Network:        s.Origin.Nettype.String(),
			Type:           s.Origin.Addrtype.String(),
			Address:        s.Origin.UnicastAddress.String(),
		},
		Name:       string(s.SessionName),
		Email:      lo.Map(s.Emails, func(e Email, _ int) string { return string(e) }),
		Phone:      lo.Map(s.Phones, func(p Phone, _ int) string { return string(p) }),
		Bandwidth:  toGoBandwidths(s.Bandwidths),
		Key:        toGoKeys(s.Key),
		Attributes: toGoAttributes(s.Attributes),
	}
	if s.Information != nil {
		out.Information = string(*s.Information)
	}
	if s.URI != nil {
		out.URI = string(*s.URI)
	}
	if s.Connection != nil {
		out.Connection = toGoConnection(*s.Connection)
	}

	t := s.Times.Head
	out.Timing = &gosdp.Timing{Start: ntpTime(t.Active.Start), Stop: ntpTime(t.Active.Stop)}
	out.Repeat = lo.Map(t.Repeats, func(r Repeat, _ int) *gosdp.Repeat {
		return &gosdp.Repeat{
			Interval: r.Interval.Duration,
			Duration: r.Duration.Duration,
			Offsets:  lo.Map(r.Offsets.Slice(), func(o TypedTime, _ int) time.Duration { return o.Duration }),
		}
	})
	if t.Zone != nil {
		out.TimeZone = lo.Map(t.Zone.Parts.Slice(), func(p ZonePart, _ int) *gosdp.TimeZone {
			return &gosdp.TimeZone{Time: ntpTime(p.Adjustment), Offset: p.Offset.Duration}
		})
	}

	out.Media = lo.Map(s.MediaDescriptions, func(md MediaDescription, _ int) *gosdp.Media {
		m := &gosdp.Media{
			Type:        md.Media.Type.String(),
			Port:        int(md.Media.Port),
			Proto:       md.Media.Proto.String(),
			FormatDescr: md.Media.Fmt,
			Connection:  lo.Map(md.Connections, func(c Connection, _ int) *gosdp.Connection { return toGoConnection(c) }),
			Bandwidth:   toGoBandwidths(md.Bandwidths),
			Key:         toGoKeys(md.Key),
			Attributes:  toGoAttributes(md.Attributes),
		}
		if md.Media.NumOfPorts != nil {
			m.PortNum = int(*md.Media.NumOfPorts)
		}
		if md.Information != nil {
			m.Information = string(*md.Information)
		}
		return m
	})
	return out
}

type defaultTestVector struct {
	Name    string
	Session *gosdp.Session
}

var defaultMarshalTests = lo.Map(testVectors, func(v *testVector, _ int) *defaultTestVector {
	return &defaultTestVector{Name: v.Name, Session: toGoSDP(v.Session)}
})

func BenchmarkEncode(b *testing.B) {
	for _, test := range testVectors {
		test := test
		b.Run(test.Name, func(b *testing.B) {
			var buf bytes.Buffer
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Reset()
				if err := NewEncoder(&buf).Encode(test.Session); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDefaultEncode(b *testing.B) {
	for _, test := range defaultMarshalTests {
		test := test
		b.Run(test.Name, func(b *testing.B) {
			var buf bytes.Buffer
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.Reset()
				if err := gosdp.NewEncoder(&buf).Encode(test.Session); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	for _, test := range testVectors {
		data := crlf(test.Data)
		b.Run(test.Name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Parse(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkPionDecode(b *testing.B) {
	for _, test := range testVectors {
		data := []byte(crlf(test.Data))
		b.Run(test.Name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				var sd pionsdp.SessionDescription
				if err := sd.Unmarshal(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
