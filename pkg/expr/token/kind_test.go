package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "integer", KindInteger.String())
	require.Equal(t, "unknown", Kind(9999).String())
}

func TestVariableKinds(t *testing.T) {
	for name, kind := range VariableKinds {
		require.NotEqual(t, KindUnknown, kind, name)
	}
	require.Contains(t, VariableKinds, "ipv4SocketAddress")
	require.Equal(t, KindIPv4SocketAddress, VariableKinds["ipv4SocketAddress"])
}
