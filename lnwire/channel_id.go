package lnwire

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/btcsuite/btcd/wire"
)

// ChannelID is a series of 32 bytes that uniquely identifies a channel.
//
// BOLT #2: this message introduces the channel_id to identify the channel,
// which is derived from the funding transaction by combining the
// funding_txid and the funding_output_index using big-endian exclusive-OR
// (i.e. funding_output_index alters the last two bytes).
type ChannelID [32]byte

// String returns the hex string encoding of the ChannelID.
func (c ChannelID) String() string {
	return hex.EncodeToString(c[:])
}

// NewChanIDFromOutPoint derives a ChannelID from a funding outpoint by
// XOR'ing the last two bytes of the txid with the big-endian serialization
// of the output index.
func NewChanIDFromOutPoint(op *wire.OutPoint) ChannelID {
	var cid ChannelID
	copy(cid[:], op.Hash[:])

	xorTxid(&cid, uint16(op.Index))

	return cid
}

// xorTxid applies the output-index XOR to an otherwise-unaltered txid copy.
func xorTxid(cid *ChannelID, outputIndex uint16) {
	var buf [32]byte
	binary.BigEndian.PutUint16(buf[30:], outputIndex)

	cid[30] ^= buf[30]
	cid[31] ^= buf[31]
}

// IsChanPoint returns true if op derives the ChannelID c.
func (c ChannelID) IsChanPoint(op *wire.OutPoint) bool {
	return NewChanIDFromOutPoint(op) == c
}

// Encode writes the raw 32 bytes of the channel ID to w.
func (c ChannelID) Encode(w *Writer) {
	w.PutBytes(c[:])
}

// Decode reads 32 raw bytes into the channel ID from r.
func (c *ChannelID) Decode(r *Cursor) {
	r.Fixed(c[:])
}
