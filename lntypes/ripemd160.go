package lntypes

import (
	"encoding/hex"
	"fmt"

	"github.com/bigstonebtc/lightning/lnwire"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck
)

// Ripemd160Size is the length in bytes of a RIPEMD-160 digest.
const Ripemd160Size = 20

// Ripemd160 is a fixed-width RIPEMD-160 digest, used for HTLC hash locks
// derived as RIPEMD160(SHA256(preimage)), the same construction
// input.Ripemd160H uses for its script hashes.
type Ripemd160 [Ripemd160Size]byte

// String returns the digest as a hexadecimal string.
func (h Ripemd160) String() string {
	return hex.EncodeToString(h[:])
}

// MakeRipemd160 returns a new Ripemd160 from a byte slice, erroring if the
// slice is not exactly Ripemd160Size bytes.
func MakeRipemd160(b []byte) (Ripemd160, error) {
	if len(b) != Ripemd160Size {
		return Ripemd160{}, fmt.Errorf("invalid ripemd160 length of %v, "+
			"want %v", len(b), Ripemd160Size)
	}

	var h Ripemd160
	copy(h[:], b)

	return h, nil
}

// Hash160 computes RIPEMD160(SHA256(preimage)), the digest scheme used by
// this module's HTLC hash locks.
func (p Preimage) Hash160() Ripemd160 {
	shaSum := p.Hash()

	r := ripemd160.New()
	r.Write(shaSum[:])

	var out Ripemd160
	copy(out[:], r.Sum(nil))

	return out
}

// Encode writes the raw 20-byte digest to w, mirroring
// fromwire_ripemd160's plain fixed-width read.
func (h Ripemd160) Encode(w *lnwire.Writer) {
	w.PutBytes(h[:])
}

// Decode reads a raw 20-byte digest from r.
func (h *Ripemd160) Decode(r *lnwire.Cursor) {
	r.Fixed(h[:])
}
