package classload

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticResolver_resolvesRegisteredHandle(t *testing.T) {
	r := NewStaticResolver(map[MethodHandle]string{
		0x1: "Account.deposit",
	})

	name, ok := r.ResolveMethodName(0x1)
	require.True(t, ok)
	require.Equal(t, "Account.deposit", name)
}

func TestStaticResolver_reportsUnknownHandle(t *testing.T) {
	r := NewStaticResolver(nil)

	_, ok := r.ResolveMethodName(0x99)
	require.False(t, ok)
}

func TestStaticResolver_bindOverwrites(t *testing.T) {
	r := NewStaticResolver(map[MethodHandle]string{0x1: "A.m"})
	r.Bind(0x1, "B.m")

	name, ok := r.ResolveMethodName(0x1)
	require.True(t, ok)
	require.Equal(t, "B.m", name)
}

func TestQualifiedMethodName(t *testing.T) {
	require.Equal(t, "Account.deposit", QualifiedMethodName("Account", "deposit"))
}
