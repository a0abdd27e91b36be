package sdp

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

// Origin is the "o=" line identifying the session and its creator.
type Origin struct {
	Username       string
	SessionID      uint64
	SessionVersion uint64
	Nettype        Nettype
	Addrtype       Addrtype
	UnicastAddress netip.Addr
}

func ParseOrigin(s string) (Origin, error) {
	return parseLine(s, "origin", tokenizer.TokenizeOrigin, newOrigin)
}

func newOrigin(o tokenizer.Origin) (Origin, error) {
	id, err := strconv.ParseUint(o.SessID, 10, 64)
	if err != nil {
		return Origin{}, parseError("origin session id", o.SessID, err)
	}
	version, err := strconv.ParseUint(o.SessVersion, 10, 64)
	if err != nil {
		return Origin{}, parseError("origin session version", o.SessVersion, err)
	}
	addr, err := netip.ParseAddr(o.UnicastAddress)
	if err != nil {
		return Origin{}, parseError("origin unicast address", o.UnicastAddress, err)
	}
	return Origin{
		Username:       strings.Clone(o.Username),
		SessionID:      id,
		SessionVersion: version,
		Nettype:        Nettype(strings.Clone(o.Nettype)),
		Addrtype:       Addrtype(strings.Clone(o.Addrtype)),
		UnicastAddress: addr,
	}, nil
}

func (o Origin) String() string { return render(o.encode) }

func (o Origin) encode(b *buffer) {
	b.writeString("o=").
		writeString(o.Username).writeSpace().
		writeUint64(o.SessionID).writeSpace().
		writeUint64(o.SessionVersion).writeSpace().
		writeString(string(o.Nettype)).writeSpace().
		writeString(string(o.Addrtype)).writeSpace().
		writeString(o.UnicastAddress.String())
}
