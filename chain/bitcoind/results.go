package bitcoind

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// extractFeerate pulls the "feerate" field out of an estimatesmartfee
// response, mirroring extract_feerate. The second return value is false if
// the field is absent (bitcoind could not produce an estimate), which is
// not itself an error.
func extractFeerate(output []byte) (float64, bool) {
	var resp struct {
		FeeRate *float64 `json:"feerate"`
	}
	if err := json.Unmarshal(output, &resp); err != nil {
		return 0, false
	}
	if resp.FeeRate == nil {
		return 0, false
	}

	return *resp.FeeRate, true
}

// extractBlockTxid pulls the txid at position idx out of a getblock
// response's "tx" array, mirroring process_getblock's three-way handling: a
// malformed response or one missing the "tx" member is a protocol error
// (err != nil), an out-of-range idx is a valid "missing" result (found is
// false, err is nil), and an in-range entry that isn't valid hex is also a
// protocol error, since it would otherwise be forwarded unvalidated into a
// gettxout lookup.
func extractBlockTxid(output []byte, idx int) (txid string, found bool, err error) {
	var resp struct {
		Tx *[]string `json:"tx"`
	}
	if unmarshalErr := json.Unmarshal(output, &resp); unmarshalErr != nil {
		return "", false, fmt.Errorf("invalid getblock response: %w", unmarshalErr)
	}
	if resp.Tx == nil {
		return "", false, errors.New("getblock response missing tx member")
	}

	tx := *resp.Tx
	if idx < 0 || idx >= len(tx) {
		return "", false, nil
	}

	candidate := tx[idx]
	if _, hexErr := hex.DecodeString(candidate); hexErr != nil {
		return "", false, fmt.Errorf(
			"getblock response had bad txid %q at index %d: %w",
			candidate, idx, hexErr)
	}

	return candidate, true, nil
}

// extractTxOut parses a gettxout response into a TxOutput, mirroring
// process_gettxout's value/scriptPubKey.hex extraction. Both fields are
// mandatory in a well-formed response; either being absent is a protocol
// error, not an empty output.
func extractTxOut(output []byte) (*TxOutput, error) {
	var resp struct {
		Value        *float64 `json:"value"`
		ScriptPubKey struct {
			Hex *string `json:"hex"`
		} `json:"scriptPubKey"`
	}
	if err := json.Unmarshal(output, &resp); err != nil {
		return nil, fmt.Errorf("invalid gettxout response: %w", err)
	}
	if resp.Value == nil {
		return nil, errors.New("gettxout response missing value")
	}
	if resp.ScriptPubKey.Hex == nil {
		return nil, errors.New("gettxout response missing scriptPubKey.hex")
	}

	script, err := hex.DecodeString(*resp.ScriptPubKey.Hex)
	if err != nil {
		return nil, fmt.Errorf("scriptPubKey.hex invalid hex: %w", err)
	}

	amount, err := btcutil.NewAmount(*resp.Value)
	if err != nil {
		return nil, fmt.Errorf("invalid value %v: %w", *resp.Value, err)
	}

	return &TxOutput{
		AmountSat: int64(amount),
		PkScript:  script,
	}, nil
}
