package lntypes

import (
	"testing"

	"github.com/bigstonebtc/lightning/lnwire"
	"github.com/stretchr/testify/require"
)

func TestPreimageMatchesHash(t *testing.T) {
	t.Parallel()

	preimage, err := RandomPreimage()
	require.NoError(t, err)

	h := preimage.Hash()
	require.True(t, preimage.Matches(h))

	other, err := RandomPreimage()
	require.NoError(t, err)
	require.False(t, other.Matches(h))
}

func TestMakePreimageFromStr(t *testing.T) {
	t.Parallel()

	preimage, err := RandomPreimage()
	require.NoError(t, err)

	parsed, err := MakePreimageFromStr(preimage.String())
	require.NoError(t, err)
	require.Equal(t, *preimage, parsed)

	_, err = MakePreimageFromStr("too-short")
	require.Error(t, err)
}

func TestPreimageWireRoundTrip(t *testing.T) {
	t.Parallel()

	preimage, err := RandomPreimage()
	require.NoError(t, err)

	w := lnwire.NewWriter()
	preimage.Encode(w)
	require.Len(t, w.Bytes(), PreimageSize)

	var decoded Preimage
	c := lnwire.NewCursor(w.Bytes())
	decoded.Decode(c)
	require.NoError(t, c.Err())
	require.Equal(t, *preimage, decoded)
}

func TestPreimageDecodeShortReadPoisonsCursor(t *testing.T) {
	t.Parallel()

	var p Preimage
	c := lnwire.NewCursor(make([]byte, 10))
	p.Decode(c)

	require.ErrorIs(t, c.Err(), lnwire.ErrCursorPoisoned)
}
