package tokenizer

import "strings"

// Rtpmap is the value of an "a=rtpmap:" attribute:
// "<payload type> <encoding name>/<clock rate>[/<encoding parameters>]".
type Rtpmap struct {
	PayloadType    string
	EncodingName   string
	ClockRate      string
	EncodingParams string
}

// TokenizeRtpmap splits an rtpmap attribute value.
func TokenizeRtpmap(s string) (Rtpmap, error) {
	const field = "rtpmap attribute"
	pt, encoding, ok := strings.Cut(s, " ")
	if !ok {
		return Rtpmap{}, fail(field, s)
	}
	parts := strings.Split(encoding, "/")
	if len(parts) < 2 || len(parts) > 3 || hasEmpty(parts) {
		return Rtpmap{}, fail(field, s)
	}
	r := Rtpmap{PayloadType: pt, EncodingName: parts[0], ClockRate: parts[1]}
	if len(parts) == 3 {
		r.EncodingParams = parts[2]
	}
	return r, nil
}

// Fmtp is the value of an "a=fmtp:" attribute: "<format> <parameters>".
type Fmtp struct {
	Fmt    string
	Params string
}

// TokenizeFmtp splits an fmtp attribute value.
func TokenizeFmtp(s string) (Fmtp, error) {
	f, params, ok := strings.Cut(s, " ")
	if !ok || f == "" {
		return Fmtp{}, fail("fmtp attribute", s)
	}
	return Fmtp{Fmt: f, Params: params}, nil
}

// FmtpParam is one "<name>[=<value>]" entry of an fmtp parameter list.
type FmtpParam struct {
	Name  string
	Value string
}

// TokenizeFmtpParams splits a semicolon separated parameter list. Blank
// entries are skipped and surrounding spaces are trimmed.
func TokenizeFmtpParams(s string) []FmtpParam {
	var params []FmtpParam
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, val, _ := strings.Cut(item, "=")
		params = append(params, FmtpParam{Name: name, Value: val})
	}
	return params
}
