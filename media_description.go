package sdp

import (
	"github.com/nostressdev/sdp/internal/tokenizer"
)

// MediaDescription is an "m=" line with the lines that apply to that
// media stream only.
type MediaDescription struct {
	Media       Media
	Information *SessionInformation
	Connections []Connection
	Bandwidths  []Bandwidth
	Key         *Key
	Attributes  []Attribute
}

// ParseMediaDescription parses an "m=" line and the media level lines
// following it.
func ParseMediaDescription(s string) (MediaDescription, error) {
	return parseLine(s, "media description", tokenizer.TokenizeMediaDescription, newMediaDescription)
}

func newMediaDescription(md tokenizer.MediaDescription) (MediaDescription, error) {
	var (
		out MediaDescription
		err error
	)
	if out.Media, err = newMedia(md.Media); err != nil {
		return MediaDescription{}, err
	}
	if out.Information, err = mapOptional(md.Information, newSessionInformation); err != nil {
		return MediaDescription{}, err
	}
	if out.Connections, err = mapAll(md.Connections, newConnection); err != nil {
		return MediaDescription{}, err
	}
	if out.Bandwidths, err = mapAll(md.Bandwidths, newBandwidth); err != nil {
		return MediaDescription{}, err
	}
	if out.Key, err = mapOptional(md.Key, newKey); err != nil {
		return MediaDescription{}, err
	}
	if out.Attributes, err = mapAll(md.Attributes, newAttribute); err != nil {
		return MediaDescription{}, err
	}
	return out, nil
}

// Attribute returns the first attribute called name.
func (md MediaDescription) Attribute(name string) (Attribute, bool) {
	return findAttribute(md.Attributes, name)
}

// String renders every line of the media description, each terminated by
// CRLF.
func (md MediaDescription) String() string { return render(md.encode) }

func (md MediaDescription) encode(b *buffer) {
	md.Media.encode(b)
	b.writeNewline()
	if md.Information != nil {
		b.writeString(md.Information.String()).writeNewline()
	}
	for _, c := range md.Connections {
		c.encode(b)
		b.writeNewline()
	}
	for _, bw := range md.Bandwidths {
		bw.encode(b)
		b.writeNewline()
	}
	if md.Key != nil {
		md.Key.encode(b)
		b.writeNewline()
	}
	encodeAttributes(b, md.Attributes)
}

func encodeAttributes(b *buffer, attrs []Attribute) {
	for _, a := range attrs {
		encodeAttribute(b, a)
		b.writeNewline()
	}
}

func findAttribute(attrs []Attribute, name string) (Attribute, bool) {
	for _, a := range attrs {
		if a.AttributeName() == name {
			return a, true
		}
	}
	return nil, false
}
