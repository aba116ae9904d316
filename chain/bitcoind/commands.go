package bitcoind

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// EstimateFeesCB receives the estimated fee rate, in satoshis per kilo-weight,
// for each requested (block, mode) pair, in the same order they were
// requested. A rate of 0 means bitcoind could not produce an estimate for
// that pair.
type EstimateFeesCB func(satPerKw []uint32)

// EstimateFees queries estimatesmartfee once per (blocks[i], estModes[i])
// pair, sequentially, mirroring do_one_estimatefee's recursive one-at-a-time
// chain, and delivers every result together once the last query completes.
func (c *Client) EstimateFees(blocks []uint32, estModes []string, cb EstimateFeesCB) {
	if len(blocks) != len(estModes) {
		panic("bitcoind: EstimateFees requires matching blocks/estModes length")
	}

	rates := make([]uint32, len(blocks))
	c.estimateFeeAt(blocks, estModes, rates, 0, cb)
}

func (c *Client) estimateFeeAt(blocks []uint32, estModes []string,
	rates []uint32, i int, cb EstimateFeesCB) {

	if i == len(blocks) {
		cb(rates)
		return
	}

	req := &pendingRequest{
		args: c.buildArgs("estimatesmartfee",
			strconv.FormatUint(uint64(blocks[i]), 10), estModes[i]),
	}
	req.process = func(output []byte, exitStatus int, err error) {
		if err != nil {
			// Client shutting down; drop the whole chain silently
			// rather than deliver a partial result.
			return
		}

		feerate, ok := extractFeerate(output)
		if !ok {
			log.Warnf("unable to estimate %s/%d fee", estModes[i], blocks[i])
			rates[i] = 0
		} else {
			// Rate in satoshi per kw.
			rates[i] = uint32(feerate * 100000000 / 4)
		}

		c.estimateFeeAt(blocks, estModes, rates, i+1, cb)
	}

	c.enqueue(req)
}

// SendRawTxCB receives the sendrawtransaction exit status and its raw
// output message.
type SendRawTxCB func(exitStatus int, msg string)

// SendRawTx submits hexTx via sendrawtransaction. A non-zero exit status is
// reported to the callback rather than triggering the error-streak policy,
// since a broadcast rejection is an expected outcome, not a sign bitcoind is
// unreachable.
func (c *Client) SendRawTx(hexTx string, cb SendRawTxCB) {
	req := &pendingRequest{
		args:          c.buildArgs("sendrawtransaction", hexTx),
		nonZeroExitOK: true,
	}
	req.process = func(output []byte, exitStatus int, err error) {
		if err != nil {
			return
		}

		cb(exitStatus, strings.TrimSpace(string(output)))
	}

	c.enqueue(req)
}

// GetRawBlockCB receives the fully parsed block requested via GetRawBlock.
type GetRawBlockCB func(block *wire.MsgBlock)

// GetRawBlock fetches the raw serialized block for blockHash via getblock
// and decodes it, mirroring bitcoind_getrawblock_'s call into
// bitcoin_block_from_hex: malformed hex or a block that fails to deserialize
// is a protocol error bitcoind should never produce, so it is fatal rather
// than reported as a missing block.
func (c *Client) GetRawBlock(blockHash chainhash.Hash, cb GetRawBlockCB) {
	req := &pendingRequest{
		args: c.buildArgs("getblock", blockHash.String(), "0"),
	}
	req.process = func(output []byte, _ int, err error) {
		if err != nil {
			return
		}

		rawHex := strings.TrimSpace(string(output))

		raw, err := hex.DecodeString(rawHex)
		if err != nil {
			c.Fatal(fmt.Errorf("getblock %s: bad hex block: %w",
				blockHash, err))
			return
		}

		block := &wire.MsgBlock{}
		if err := block.Deserialize(bytes.NewReader(raw)); err != nil {
			c.Fatal(fmt.Errorf("getblock %s: bad block: %w",
				blockHash, err))
			return
		}

		cb(block)
	}

	c.enqueue(req)
}

// GetBlockCountCB receives the current chain height.
type GetBlockCountCB func(height uint32)

// GetBlockCount fetches the current chain height via getblockcount.
func (c *Client) GetBlockCount(cb GetBlockCountCB) {
	req := &pendingRequest{
		args: c.buildArgs("getblockcount"),
	}
	req.process = func(output []byte, _ int, err error) {
		if err != nil {
			return
		}

		trimmed := strings.TrimSpace(string(output))
		height, err := strconv.ParseUint(trimmed, 10, 32)
		if err != nil {
			c.Fatal(fmt.Errorf("getblockcount gave non-numeric result %q: %w",
				trimmed, err))
			return
		}

		cb(uint32(height))
	}

	c.enqueue(req)
}

// TxOutput is a single unspent transaction output, as returned by gettxout.
type TxOutput struct {
	// AmountSat is the output's value in satoshis.
	AmountSat int64

	// PkScript is the output's scriptPubKey, in raw serialized form.
	PkScript []byte
}

// GetOutputCB receives the resolved output, or nil if it could not be
// found (already spent, or the requested block/tx/output index doesn't
// exist).
type GetOutputCB func(out *TxOutput)

// GetOutput resolves the transaction output at (blockNum, txNum, outNum) by
// chaining getblockhash, getblock, and gettxout, mirroring
// bitcoind_getoutput_'s internal chain: the caller sees a single callback
// regardless of how many intermediate lookups were needed.
func (c *Client) GetOutput(blockNum, txNum, outNum uint32, cb GetOutputCB) {
	c.getOutputAnchored(blockNum, txNum, outNum, fn.None[*Anchor](), cb)
}

// GetOutputWithAnchor is identical to GetOutput but ties the whole chained
// lookup to anchor: if anchor is cancelled before the chain completes, none
// of the intermediate or final callbacks fire.
func (c *Client) GetOutputWithAnchor(blockNum, txNum, outNum uint32,
	anchor *Anchor, cb GetOutputCB) {

	c.getOutputAnchored(blockNum, txNum, outNum, fn.Some(anchor), cb)
}

func (c *Client) getOutputAnchored(blockNum, txNum, outNum uint32,
	anchor fn.Option[*Anchor], cb GetOutputCB) {

	req := &pendingRequest{
		args:          c.buildArgs("getblockhash", strconv.FormatUint(uint64(blockNum), 10)),
		nonZeroExitOK: true,
		anchor:        anchor,
	}
	req.process = func(output []byte, exitStatus int, err error) {
		if err != nil {
			return
		}
		if exitStatus != 0 {
			log.Debugf("getblockhash %d: invalid blocknum?", blockNum)
			cb(nil)
			return
		}

		blockHash := strings.TrimSpace(string(output))
		c.getBlockForOutput(blockHash, txNum, outNum, anchor, cb)
	}

	c.enqueue(req)
}

func (c *Client) getBlockForOutput(blockHash string, txNum, outNum uint32,
	anchor fn.Option[*Anchor], cb GetOutputCB) {

	req := &pendingRequest{
		args:   c.buildArgs("getblock", blockHash),
		anchor: anchor,
	}
	req.process = func(output []byte, _ int, err error) {
		if err != nil {
			return
		}

		txid, found, err := extractBlockTxid(output, int(txNum))
		if err != nil {
			c.Fatal(fmt.Errorf("getblock %s: %w", blockHash, err))
			return
		}
		if !found {
			log.Debugf("getblock %s: no txnum %d", blockHash, txNum)
			cb(nil)
			return
		}

		c.getTxOutForOutput(txid, outNum, anchor, cb)
	}

	c.enqueue(req)
}

func (c *Client) getTxOutForOutput(txid string, outNum uint32,
	anchor fn.Option[*Anchor], cb GetOutputCB) {

	req := &pendingRequest{
		args:          c.buildArgs("gettxout", txid, strconv.FormatUint(uint64(outNum), 10)),
		nonZeroExitOK: true,
		anchor:        anchor,
	}
	req.process = func(output []byte, exitStatus int, err error) {
		if err != nil {
			return
		}
		if exitStatus != 0 {
			log.Debugf("gettxout %s %d: not unspent output?", txid, outNum)
			cb(nil)
			return
		}

		out, err := extractTxOut(output)
		if err != nil {
			c.Fatal(fmt.Errorf("gettxout %s %d: %w", txid, outNum, err))
			return
		}

		cb(out)
	}

	c.enqueue(req)
}

// GetBlockHashCB receives the block hash at the requested height, or nil if
// the height is invalid.
type GetBlockHashCB func(hash *chainhash.Hash)

// GetBlockHash resolves the block hash at height via getblockhash.
func (c *Client) GetBlockHash(height uint32, cb GetBlockHashCB) {
	req := &pendingRequest{
		args:          c.buildArgs("getblockhash", strconv.FormatUint(uint64(height), 10)),
		nonZeroExitOK: true,
	}
	req.process = func(output []byte, exitStatus int, err error) {
		if err != nil {
			return
		}
		if exitStatus != 0 {
			cb(nil)
			return
		}

		trimmed := strings.TrimSpace(string(output))
		hash, err := chainhash.NewHashFromStr(trimmed)
		if err != nil {
			c.Fatal(fmt.Errorf("getblockhash %d: bad blockid %q: %w",
				height, trimmed, err))
			return
		}

		cb(hash)
	}

	c.enqueue(req)
}
