package sdp

import (
	"strconv"
	"strings"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

// Rtpmap maps an RTP payload type to an encoding, as in
// "a=rtpmap:97 L16/8000/2".
type Rtpmap struct {
	PayloadType  uint8
	EncodingName string
	ClockRate    uint32
	// EncodingParams is the channel count for audio encodings.
	EncodingParams *uint32
}

// ParseRtpmap parses the value of an rtpmap attribute.
func ParseRtpmap(s string) (Rtpmap, error) {
	r, err := parseRtpmap(s)
	if err != nil {
		return Rtpmap{}, toFieldError("rtpmap attribute", s, err)
	}
	return r, nil
}

func parseRtpmap(s string) (Rtpmap, error) {
	node, err := tokenizer.TokenizeRtpmap(s)
	if err != nil {
		return Rtpmap{}, err
	}
	pt, err := strconv.ParseUint(node.PayloadType, 10, 8)
	if err != nil {
		return Rtpmap{}, err
	}
	rate, err := strconv.ParseUint(node.ClockRate, 10, 32)
	if err != nil {
		return Rtpmap{}, err
	}
	r := Rtpmap{
		PayloadType:  uint8(pt),
		EncodingName: strings.Clone(node.EncodingName),
		ClockRate:    uint32(rate),
	}
	if node.EncodingParams != "" {
		params, err := strconv.ParseUint(node.EncodingParams, 10, 32)
		if err != nil {
			return Rtpmap{}, err
		}
		r.EncodingParams = uint32Ptr(params)
	}
	return r, nil
}

func (r Rtpmap) String() string { return render(r.encode) }

func (r Rtpmap) encode(b *buffer) {
	b.writeUint64(uint64(r.PayloadType)).writeSpace().
		writeString(r.EncodingName).writeChar('/').
		writeUint64(uint64(r.ClockRate))
	if r.EncodingParams != nil {
		b.writeChar('/').writeUint64(uint64(*r.EncodingParams))
	}
}

func (r Rtpmap) AttributeName() string          { return "rtpmap" }
func (r Rtpmap) AttributeValue() (string, bool) { return r.String(), true }

// Fmtp carries format specific parameters, as in
// "a=fmtp:96 profile-level-id=42e01f;packetization-mode=1".
type Fmtp struct {
	Format     string
	Parameters string
}

// FmtpParam is one entry of an fmtp parameter list. Value is empty for a
// bare flag.
type FmtpParam struct {
	Name  string
	Value string
}

// ParseFmtp parses the value of an fmtp attribute.
func ParseFmtp(s string) (Fmtp, error) {
	f, err := parseFmtp(s)
	if err != nil {
		return Fmtp{}, toFieldError("fmtp attribute", s, err)
	}
	return f, nil
}

func parseFmtp(s string) (Fmtp, error) {
	node, err := tokenizer.TokenizeFmtp(s)
	if err != nil {
		return Fmtp{}, err
	}
	return Fmtp{Format: strings.Clone(node.Fmt), Parameters: strings.Clone(node.Params)}, nil
}

// Params splits Parameters on semicolons into name[=value] pairs.
func (f Fmtp) Params() []FmtpParam {
	nodes := tokenizer.TokenizeFmtpParams(f.Parameters)
	if len(nodes) == 0 {
		return nil
	}
	params := make([]FmtpParam, 0, len(nodes))
	for _, n := range nodes {
		params = append(params, FmtpParam{Name: n.Name, Value: n.Value})
	}
	return params
}

func (f Fmtp) String() string { return f.Format + " " + f.Parameters }

func (f Fmtp) AttributeName() string          { return "fmtp" }
func (f Fmtp) AttributeValue() (string, bool) { return f.String(), true }
