package lnwire

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/require"
)

func TestNewChanIDFromOutPoint(t *testing.T) {
	t.Parallel()

	var txid chainhash.Hash
	for i := range txid {
		txid[i] = byte(i)
	}

	op := wire.OutPoint{Hash: txid, Index: 0x0102}

	cid := NewChanIDFromOutPoint(&op)

	// Every byte but the last two must be untouched.
	require.Equal(t, txid[:30], []byte(cid[:30]))

	// The last two bytes are XOR'd with the big-endian output index.
	require.Equal(t, txid[30]^0x01, cid[30])
	require.Equal(t, txid[31]^0x02, cid[31])
}

func TestChannelIDIsChanPoint(t *testing.T) {
	t.Parallel()

	var txid chainhash.Hash
	txid[0] = 0xff

	op := wire.OutPoint{Hash: txid, Index: 4}
	cid := NewChanIDFromOutPoint(&op)

	require.True(t, cid.IsChanPoint(&op))

	otherOp := wire.OutPoint{Hash: txid, Index: 5}
	require.False(t, cid.IsChanPoint(&otherOp))
}

func TestChannelIDWireRoundTrip(t *testing.T) {
	t.Parallel()

	var cid ChannelID
	for i := range cid {
		cid[i] = byte(i)
	}

	w := NewWriter()
	cid.Encode(w)
	require.Len(t, w.Bytes(), 32)

	var decoded ChannelID
	c := NewCursor(w.Bytes())
	decoded.Decode(c)

	require.NoError(t, c.Err())
	require.Equal(t, cid, decoded)
}

func TestChannelIDString(t *testing.T) {
	t.Parallel()

	var cid ChannelID
	cid[0] = 0xde
	cid[1] = 0xad

	require.Equal(t, hex.EncodeToString(cid[:]), cid.String())
	require.Equal(t, "dead", cid.String()[:4])
}
