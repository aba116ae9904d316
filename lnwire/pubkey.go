package lnwire

import (
	"github.com/btcsuite/btcd/btcec/v2"
)

// PubKeyLen is the length in bytes of a serialized compressed public key.
const PubKeyLen = 33

// PublicKey is a serialized compressed secp256k1 public key, as it appears
// on the wire.
type PublicKey [PubKeyLen]byte

// NewPublicKey serializes pub in compressed form.
func NewPublicKey(pub *btcec.PublicKey) PublicKey {
	var p PublicKey
	copy(p[:], pub.SerializeCompressed())
	return p
}

// PubKey parses the serialized bytes into a *btcec.PublicKey, returning an
// error for a malformed encoding (point not on the curve, bad prefix byte).
// On the wire, Decode applies the same check and poisons the cursor instead,
// matching pubkey_from_der's behavior.
func (p PublicKey) PubKey() (*btcec.PublicKey, error) {
	return btcec.ParsePubKey(p[:])
}

// Encode writes the 33-byte compressed public key to w.
func (p PublicKey) Encode(w *Writer) {
	w.PutBytes(p[:])
}

// Decode reads 33 bytes into p and validates that they form a point on the
// curve. An invalid point poisons the cursor.
func (p *PublicKey) Decode(r *Cursor) {
	r.Fixed(p[:])
	if r.Err() != nil {
		return
	}

	if _, err := btcec.ParsePubKey(p[:]); err != nil {
		r.err = err
	}
}

// PrivKeyLen is the length in bytes of a raw secp256k1 private key.
const PrivKeyLen = 32

// PrivateKey is a raw 32-byte secret scalar, as it appears on the wire.
// Unlike PublicKey, it is read and written without validation — the wire
// format carries it as opaque bytes, the same treatment fromwire_privkey
// gives it.
type PrivateKey [PrivKeyLen]byte

// NewPrivateKey copies priv's raw bytes.
func NewPrivateKey(priv *btcec.PrivateKey) PrivateKey {
	var p PrivateKey
	copy(p[:], priv.Serialize())
	return p
}

// PrivKey parses p into a *btcec.PrivateKey.
func (p PrivateKey) PrivKey() *btcec.PrivateKey {
	priv, _ := btcec.PrivKeyFromBytes(p[:])
	return priv
}

// Encode writes the 32 raw bytes to w, unvalidated.
func (p PrivateKey) Encode(w *Writer) {
	w.PutBytes(p[:])
}

// Decode reads 32 bytes into p without validation.
func (p *PrivateKey) Decode(r *Cursor) {
	r.Fixed(p[:])
}
