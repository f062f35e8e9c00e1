package value

import (
	"net/netip"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/require"

	"github.com/qpanda/semfilter/pkg/expr/token"
)

func TestIntegerOrdering(t *testing.T) {
	require.True(t, Integer(1).Less(Integer(2)))
	require.False(t, Integer(2).Less(Integer(1)))
	require.True(t, Integer(5).Equal(Integer(5)))
}

func TestFloatOrdering(t *testing.T) {
	require.True(t, Float(1.5).Less(Float(2.5)))
	require.True(t, Float(1.5).Equal(Float(1.5)))
}

func TestIDExtendedOps(t *testing.T) {
	id := ID("qpanda")
	require.True(t, id.Contains("pand"))
	require.True(t, id.StartsWith("qpa"))
	require.True(t, id.EndsWith("nda"))
	require.False(t, id.Contains("zzz"))
}

func TestIPAddressFamilyInterpretations(t *testing.T) {
	addr := netip.MustParseAddr("10.10.0.7")
	values := NewIPAddress(addr)
	require.Len(t, values, 2)
	require.Equal(t, token.KindIPAddress, values[0].Kind())
	require.Equal(t, token.KindIPv4Address, values[1].Kind())
}

func TestIPAddressIn(t *testing.T) {
	addr := IPAddress{Addr: netip.MustParseAddr("193.32.160.143"), K: token.KindIPv4Address}
	network := IPNetwork{Prefix: netip.MustParsePrefix("193.32.160.0/24"), K: token.KindIPv4Network}
	ok, matched := addr.In(network)
	require.True(t, matched)
	require.True(t, ok)

	other := IPNetwork{Prefix: netip.MustParsePrefix("193.32.161.0/24"), K: token.KindIPv4Network}
	ok, matched = addr.In(other)
	require.True(t, matched)
	require.False(t, ok)
}

func TestIPSocketAddressOrdering(t *testing.T) {
	a := IPSocketAddress{AddrPort: netip.MustParseAddrPort("10.0.0.1:80")}
	b := IPSocketAddress{AddrPort: netip.MustParseAddrPort("10.0.0.1:81")}
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
}

func TestSemanticVersionOrderingAndMatches(t *testing.T) {
	v1, err := semver.StrictNewVersion("0.2.0")
	require.NoError(t, err)
	v2, err := semver.StrictNewVersion("0.3.0")
	require.NoError(t, err)

	a := SemanticVersion{V: v1}
	b := SemanticVersion{V: v2}
	require.True(t, a.Less(b))

	c, err := semver.NewConstraint(">= 0.2.0")
	require.NoError(t, err)
	req := SemanticVersionRequirement{C: c}

	ok, matched := a.Matches(req)
	require.True(t, matched)
	require.True(t, ok)
}

func TestPortOrdering(t *testing.T) {
	require.True(t, Port(80).Less(Port(443)))
	require.True(t, Port(80).Equal(Port(80)))
}
