package sdp

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/nostressdev/sdp/internal/tokenizer"
)

// ConnectionAddress is "<base>[/<ttl>][/<number of addresses>]". IPv4
// multicast addresses carry a TTL; IPv6 ones never do, so a single suffix
// on an IP6 connection is the number of addresses.
type ConnectionAddress struct {
	Base    netip.Addr
	TTL     *uint32
	NumAddr *uint32
}

// ParseConnectionAddress parses the address field of a "c=" line. With no
// address type to go by, a single suffix is read as the TTL.
func ParseConnectionAddress(s string) (ConnectionAddress, error) {
	node, err := tokenizer.TokenizeConnectionAddress(s)
	if err != nil {
		return ConnectionAddress{}, wrapTokenizer(err)
	}
	return newConnectionAddress(node)
}

func newConnectionAddress(a tokenizer.ConnectionAddress) (ConnectionAddress, error) {
	base, err := netip.ParseAddr(a.Base)
	if err != nil {
		return ConnectionAddress{}, parseError("connection address", a.Base, err)
	}
	addr := ConnectionAddress{Base: base}
	if a.TTL != "" {
		ttl, err := strconv.ParseUint(a.TTL, 10, 32)
		if err != nil {
			return ConnectionAddress{}, parseError("connection address ttl", a.TTL, err)
		}
		addr.TTL = uint32Ptr(ttl)
	}
	if a.NumAddr != "" {
		n, err := strconv.ParseUint(a.NumAddr, 10, 32)
		if err != nil {
			return ConnectionAddress{}, parseError("connection number of addresses", a.NumAddr, err)
		}
		addr.NumAddr = uint32Ptr(n)
	}
	return addr, nil
}

func uint32Ptr(v uint64) *uint32 {
	u := uint32(v)
	return &u
}

func (a ConnectionAddress) String() string { return render(a.encode) }

func (a ConnectionAddress) encode(b *buffer) {
	b.writeString(a.Base.String())
	if a.TTL != nil {
		b.writeChar('/').writeUint64(uint64(*a.TTL))
	}
	if a.NumAddr != nil {
		b.writeChar('/').writeUint64(uint64(*a.NumAddr))
	}
}

// Connection is the "c=" line.
type Connection struct {
	Nettype  Nettype
	Addrtype Addrtype
	Address  ConnectionAddress
}

func ParseConnection(s string) (Connection, error) {
	return parseLine(s, "connection", tokenizer.TokenizeConnection, newConnection)
}

func newConnection(c tokenizer.Connection) (Connection, error) {
	addr, err := newConnectionAddress(c.Address)
	if err != nil {
		return Connection{}, err
	}
	addrtype := Addrtype(strings.Clone(c.Addrtype))
	if addrtype == AddrtypeIP6 && addr.NumAddr == nil {
		addr.TTL, addr.NumAddr = nil, addr.TTL
	}
	return Connection{
		Nettype:  Nettype(strings.Clone(c.Nettype)),
		Addrtype: addrtype,
		Address:  addr,
	}, nil
}

func (c Connection) String() string { return render(c.encode) }

func (c Connection) encode(b *buffer) {
	b.writeString("c=").
		writeString(string(c.Nettype)).writeSpace().
		writeString(string(c.Addrtype)).writeSpace()
	c.Address.encode(b)
}
