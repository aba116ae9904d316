package lnwire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeekMessageType(t *testing.T) {
	t.Parallel()

	w := NewWriter()
	Uint16(w, 42)
	Bytes(w, []byte{0xaa, 0xbb, 0xcc})

	msgType, ok := PeekMessageType(w.Bytes())
	require.True(t, ok)
	require.Equal(t, MessageType(42), msgType)
}

func TestPeekMessageTypeTooShort(t *testing.T) {
	t.Parallel()

	_, ok := PeekMessageType([]byte{0x01})
	require.False(t, ok)

	_, ok = PeekMessageType(nil)
	require.False(t, ok)
}
