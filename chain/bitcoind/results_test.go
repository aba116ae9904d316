package bitcoind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFeerate(t *testing.T) {
	t.Parallel()

	rate, ok := extractFeerate([]byte(`{"feerate": 0.00012345, "blocks": 6}`))
	require.True(t, ok)
	require.InDelta(t, 0.00012345, rate, 1e-9)

	_, ok = extractFeerate([]byte(`{"errors": ["insufficient data"], "blocks": 6}`))
	require.False(t, ok)

	_, ok = extractFeerate([]byte(`not json`))
	require.False(t, ok)
}

func TestExtractBlockTxid(t *testing.T) {
	t.Parallel()

	block := []byte(`{"tx": ["aaaa", "bbbb", "cccc"]}`)

	txid, found, err := extractBlockTxid(block, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "bbbb", txid)

	_, found, err = extractBlockTxid(block, 10)
	require.NoError(t, err)
	require.False(t, found)
}

func TestExtractBlockTxidMalformedJSONIsFatal(t *testing.T) {
	t.Parallel()

	_, found, err := extractBlockTxid([]byte(`not json`), 0)
	require.Error(t, err)
	require.False(t, found)
}

func TestExtractBlockTxidMissingTxMemberIsFatal(t *testing.T) {
	t.Parallel()

	_, found, err := extractBlockTxid([]byte(`{"height": 100}`), 0)
	require.Error(t, err)
	require.False(t, found)
}

func TestExtractBlockTxidBadHexEntryIsFatal(t *testing.T) {
	t.Parallel()

	block := []byte(`{"tx": ["not-hex"]}`)

	_, found, err := extractBlockTxid(block, 0)
	require.Error(t, err)
	require.False(t, found)
}

func TestExtractTxOut(t *testing.T) {
	t.Parallel()

	resp := []byte(`{
		"value": 0.5,
		"scriptPubKey": {"hex": "76a914aabbccdd88ac"}
	}`)

	out, err := extractTxOut(resp)
	require.NoError(t, err)
	require.Equal(t, int64(50000000), out.AmountSat)
	require.Equal(t, []byte{0x76, 0xa9, 0x14, 0xaa, 0xbb, 0xcc, 0xdd, 0x88, 0xac}, out.PkScript)
}

func TestExtractTxOutInvalidHex(t *testing.T) {
	t.Parallel()

	resp := []byte(`{"value": 1, "scriptPubKey": {"hex": "zz"}}`)

	_, err := extractTxOut(resp)
	require.Error(t, err)
}

func TestExtractTxOutMissingValue(t *testing.T) {
	t.Parallel()

	resp := []byte(`{"scriptPubKey": {"hex": "51"}}`)

	_, err := extractTxOut(resp)
	require.Error(t, err)
}

func TestExtractTxOutMissingScriptPubKeyHex(t *testing.T) {
	t.Parallel()

	resp := []byte(`{"value": 1, "scriptPubKey": {}}`)

	_, err := extractTxOut(resp)
	require.Error(t, err)
}
