package lntypes

import (
	"testing"

	"github.com/bigstonebtc/lightning/lnwire"
	"github.com/stretchr/testify/require"
)

func TestMakeRipemd160(t *testing.T) {
	t.Parallel()

	valid := make([]byte, Ripemd160Size)
	h, err := MakeRipemd160(valid)
	require.NoError(t, err)
	require.Equal(t, Ripemd160{}, h)

	_, err = MakeRipemd160(make([]byte, 10))
	require.Error(t, err)
}

func TestPreimageHash160(t *testing.T) {
	t.Parallel()

	preimage, err := RandomPreimage()
	require.NoError(t, err)

	h1 := preimage.Hash160()
	h2 := preimage.Hash160()

	require.Equal(t, h1, h2)
	require.NotEqual(t, Ripemd160{}, h1)
}

func TestRipemd160WireRoundTrip(t *testing.T) {
	t.Parallel()

	preimage, err := RandomPreimage()
	require.NoError(t, err)
	orig := preimage.Hash160()

	w := lnwire.NewWriter()
	orig.Encode(w)
	require.Len(t, w.Bytes(), Ripemd160Size)

	var decoded Ripemd160
	c := lnwire.NewCursor(w.Bytes())
	decoded.Decode(c)
	require.NoError(t, c.Err())
	require.Equal(t, orig, decoded)
}
