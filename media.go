package sdp

import (
	"strconv"
	"strings"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

// Media is the "m=" line opening a media description.
type Media struct {
	Type       MediaType
	Port       uint16
	NumOfPorts *uint16
	Proto      ProtoType
	// Fmt is the space separated media format list as written.
	Fmt string
}

func ParseMedia(s string) (Media, error) {
	return parseLine(s, "media", tokenizer.TokenizeMedia, newMedia)
}

func newMedia(m tokenizer.Media) (Media, error) {
	port, err := strconv.ParseUint(m.Port.Port, 10, 16)
	if err != nil {
		return Media{}, parseError("media port", m.Port.Port, err)
	}
	media := Media{
		Type:  MediaType(strings.Clone(m.Media)),
		Port:  uint16(port),
		Proto: ProtoType(strings.Clone(m.Proto)),
		Fmt:   strings.Clone(m.Fmt),
	}
	if m.Port.NumOfPorts != "" {
		n, err := strconv.ParseUint(m.Port.NumOfPorts, 10, 16)
		if err != nil {
			return Media{}, parseError("media num of ports", m.Port.NumOfPorts, err)
		}
		num := uint16(n)
		media.NumOfPorts = &num
	}
	return media, nil
}

// Formats splits the format list into its entries.
func (m Media) Formats() []string {
	return strings.Fields(m.Fmt)
}

func (m Media) String() string { return render(m.encode) }

func (m Media) encode(b *buffer) {
	b.writeString("m=").writeString(string(m.Type)).writeSpace().writeUint64(uint64(m.Port))
	if m.NumOfPorts != nil {
		b.writeChar('/').writeUint64(uint64(*m.NumOfPorts))
	}
	b.writeSpace().writeString(string(m.Proto)).writeSpace().writeString(m.Fmt)
}
