package lnwire

// HashSize is the length in bytes of a single SHA-256 digest.
const HashSize = 32

// SHA256 is a single (non-doubled) SHA-256 digest, as read directly off the
// wire.
type SHA256 [HashSize]byte

// Encode writes the raw digest to w.
func (h SHA256) Encode(w *Writer) {
	w.PutBytes(h[:])
}

// Decode reads a raw 32-byte digest from r.
func (h *SHA256) Decode(r *Cursor) {
	r.Fixed(h[:])
}

// SHA256D holds the inner digest of a double-SHA256 (SHA256(SHA256(x)))
// value. Decode only ever populates this inner digest — applying the second
// SHA-256 round is left to the caller, mirroring
// fromwire_sha256_double's delegation to fromwire_sha256.
type SHA256D struct {
	inner SHA256
}

// Inner returns the wire-transmitted inner digest.
func (h SHA256D) Inner() SHA256 {
	return h.inner
}

// Encode writes the inner digest to w.
func (h SHA256D) Encode(w *Writer) {
	h.inner.Encode(w)
}

// Decode reads the inner digest from r. No hashing happens here; the second
// SHA-256 application, if needed, is the caller's responsibility.
func (h *SHA256D) Decode(r *Cursor) {
	h.inner.Decode(r)
}

// Txid is a double-SHA256 transaction identifier, as it appears in a
// funding outpoint on the wire.
type Txid struct {
	SHA256D
}

// BlockID is a double-SHA256 block identifier.
type BlockID struct {
	SHA256D
}
