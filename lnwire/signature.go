package lnwire

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignatureSize is the length in bytes of a compact ECDSA signature (r||s,
// 32 bytes each).
const SignatureSize = 64

// Signature is a fixed-size compact ECDSA signature (r||s) as it appears on
// the wire, mirroring fromwire_secp256k1_ecdsa_signature's compact-format
// convention.
type Signature [SignatureSize]byte

// NewSignature encodes sig in compact form.
func NewSignature(sig *ecdsa.Signature) Signature {
	var s Signature

	// Serialize yields DER: 0x30 len 0x02 rlen r 0x02 slen s, with r and s
	// as minimal big-endian integers. Right-align each into its 32-byte
	// half.
	der := sig.Serialize()
	rLen := int(der[3])
	rBytes := bytes.TrimLeft(der[4:4+rLen], "\x00")
	sBytes := bytes.TrimLeft(der[6+rLen:], "\x00")
	copy(s[32-len(rBytes):32], rBytes)
	copy(s[SignatureSize-len(sBytes):], sBytes)
	return s
}

// Encode writes the 64-byte compact signature to w.
func (s Signature) Encode(w *Writer) {
	w.PutBytes(s[:])
}

// Decode reads 64 bytes and parses them as a compact ECDSA signature via
// the secp256k1 library, poisoning the cursor if r or s don't parse as
// valid curve scalars, mirroring secp256k1_ecdsa_signature_parse_compact.
func (s *Signature) Decode(r *Cursor) {
	r.Fixed(s[:])
	if r.Err() != nil {
		return
	}

	if _, err := s.ToSignature(); err != nil {
		r.err = err
	}
}

// ToSignature parses the compact r||s bytes into an *ecdsa.Signature usable
// for verification, returning an error if either half overflows the curve
// order, mirroring secp256k1_ecdsa_signature_parse_compact's rejection of
// out-of-range scalars.
func (s Signature) ToSignature() (*ecdsa.Signature, error) {
	var r, sVal btcec.ModNScalar
	if overflow := r.SetByteSlice(s[:32]); overflow {
		return nil, errors.New("lnwire: signature r overflows curve order")
	}
	if overflow := sVal.SetByteSlice(s[32:]); overflow {
		return nil, errors.New("lnwire: signature s overflows curve order")
	}

	return ecdsa.NewSignature(&r, &sVal), nil
}

// RecoverableSignatureSize is the length in bytes of a compact ECDSA
// signature plus its one-byte recovery id.
const RecoverableSignatureSize = SignatureSize + 1

// RecoverableSignature is a 64-byte compact signature followed by a 1-byte
// recovery id, mirroring
// fromwire_secp256k1_ecdsa_recoverable_signature.
type RecoverableSignature [RecoverableSignatureSize]byte

// Encode writes the 65-byte recoverable signature to w.
func (s RecoverableSignature) Encode(w *Writer) {
	w.PutBytes(s[:])
}

// Decode reads 65 bytes and parses them via the same compact-signature
// validation as Signature.Decode, additionally rejecting a recovery id
// outside {0,1,2,3}, mirroring
// secp256k1_ecdsa_recoverable_signature_parse_compact.
func (s *RecoverableSignature) Decode(r *Cursor) {
	r.Fixed(s[:])
	if r.Err() != nil {
		return
	}

	var sig Signature
	copy(sig[:], s[:SignatureSize])
	if _, err := sig.ToSignature(); err != nil {
		r.err = err
		return
	}

	recid := s[SignatureSize]
	if recid > 3 {
		r.err = fmt.Errorf("lnwire: invalid recovery id %d", recid)
	}
}

// Recover recovers the public key that produced the recoverable signature
// over msg, using the embedded recovery id.
func (s RecoverableSignature) Recover(msg []byte) (*btcec.PublicKey, error) {
	compact := make([]byte, RecoverableSignatureSize)

	// btcec's compact format is [recid+27][r][s], while the wire format
	// this codec follows is [r][s][recid]; re-pack before recovering.
	compact[0] = s[SignatureSize] + 27
	copy(compact[1:], s[:SignatureSize])

	pub, _, err := ecdsa.RecoverCompact(compact, msg)
	return pub, err
}
