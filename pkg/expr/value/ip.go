package value

import (
	"net/netip"

	"github.com/qpanda/semfilter/pkg/expr/token"
)

// IPAddress is an IPv4 or IPv6 host address. Kind distinguishes whether it
// was recognised (or requested) as the family-agnostic ipAddress or one of
// the family-specific variants; a single token typically carries both an
// IPAddress and an Ipv4Address/Ipv6Address interpretation simultaneously.
type IPAddress struct {
	Addr netip.Addr
	K    token.Kind
}

// NewIPAddress builds the generic and family-specific interpretations for
// an address, in the order [ipAddress, family-specific].
func NewIPAddress(addr netip.Addr) []IPAddress {
	familyKind := token.KindIPv4Address
	if addr.Is6() {
		familyKind = token.KindIPv6Address
	}
	return []IPAddress{
		{Addr: addr, K: token.KindIPAddress},
		{Addr: addr, K: familyKind},
	}
}

func (v IPAddress) Kind() token.Kind { return v.K }
func (v IPAddress) String() string   { return v.Addr.String() }

func (v IPAddress) Less(other Value) bool {
	o, ok := other.(IPAddress)
	return ok && v.Addr.Less(o.Addr)
}

func (v IPAddress) Equal(other Value) bool {
	o, ok := other.(IPAddress)
	return ok && v.Addr == o.Addr
}

// In reports whether v lies within network's prefix. The second return is
// false when network is not an IPNetwork value.
func (v IPAddress) In(network Value) (bool, bool) {
	n, ok := network.(IPNetwork)
	if !ok {
		return false, false
	}
	return n.Prefix.Contains(v.Addr), true
}

// IPSocketAddress is an address/port pair.
type IPSocketAddress struct {
	AddrPort netip.AddrPort
	K        token.Kind
}

func NewIPSocketAddress(ap netip.AddrPort) []IPSocketAddress {
	familyKind := token.KindIPv4SocketAddress
	if ap.Addr().Is6() {
		familyKind = token.KindIPv6SocketAddress
	}
	return []IPSocketAddress{
		{AddrPort: ap, K: token.KindIPSocketAddress},
		{AddrPort: ap, K: familyKind},
	}
}

func (v IPSocketAddress) Kind() token.Kind { return v.K }
func (v IPSocketAddress) String() string   { return v.AddrPort.String() }

// Less orders lexicographically on (addr, port).
func (v IPSocketAddress) Less(other Value) bool {
	o, ok := other.(IPSocketAddress)
	if !ok {
		return false
	}
	if v.AddrPort.Addr() != o.AddrPort.Addr() {
		return v.AddrPort.Addr().Less(o.AddrPort.Addr())
	}
	return v.AddrPort.Port() < o.AddrPort.Port()
}

func (v IPSocketAddress) Equal(other Value) bool {
	o, ok := other.(IPSocketAddress)
	return ok && v.AddrPort == o.AddrPort
}

// IPNetwork is a CIDR network (address + prefix length).
type IPNetwork struct {
	Prefix netip.Prefix
	K      token.Kind
}

func NewIPNetwork(p netip.Prefix) []IPNetwork {
	familyKind := token.KindIPv4Network
	if p.Addr().Is6() {
		familyKind = token.KindIPv6Network
	}
	return []IPNetwork{
		{Prefix: p, K: token.KindIPNetwork},
		{Prefix: p, K: familyKind},
	}
}

func (v IPNetwork) Kind() token.Kind { return v.K }
func (v IPNetwork) String() string   { return v.Prefix.String() }

// Less orders lexicographically on (addr, prefix length).
func (v IPNetwork) Less(other Value) bool {
	o, ok := other.(IPNetwork)
	if !ok {
		return false
	}
	if v.Prefix.Addr() != o.Prefix.Addr() {
		return v.Prefix.Addr().Less(o.Prefix.Addr())
	}
	return v.Prefix.Bits() < o.Prefix.Bits()
}

func (v IPNetwork) Equal(other Value) bool {
	o, ok := other.(IPNetwork)
	return ok && v.Prefix == o.Prefix
}
