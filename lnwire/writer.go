package lnwire

import (
	"bytes"
	"encoding/binary"
)

// Writer accumulates the wire encoding of a message. Unlike Cursor, Writer
// cannot fail: appending to an in-memory buffer has no error case, so every
// Put method returns nothing and simply grows the buffer.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated wire encoding.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// PutUint8 appends a single byte.
func (w *Writer) PutUint8(v uint8) {
	w.buf.WriteByte(v)
}

// PutUint16 appends a big-endian uint16.
func (w *Writer) PutUint16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// PutUint32 appends a big-endian uint32.
func (w *Writer) PutUint32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// PutUint64 appends a big-endian uint64.
func (w *Writer) PutUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// PutUint24 appends a big-endian 3-byte unsigned integer, truncating v to 24
// bits.
func (w *Writer) PutUint24(v uint32) {
	w.buf.Write([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

// PutBool appends a single byte, 0 or 1.
func (w *Writer) PutBool(v bool) {
	if v {
		w.PutUint8(1)
		return
	}
	w.PutUint8(0)
}

// PutBytes appends b verbatim, with no length prefix.
func (w *Writer) PutBytes(b []byte) {
	w.buf.Write(b)
}

// Encoder is implemented by any wire value which can write its own
// representation to a Writer.
type Encoder interface {
	Encode(w *Writer)
}

// Encode returns the wire encoding of enc.
func Encode(enc Encoder) []byte {
	w := NewWriter()
	enc.Encode(w)
	return w.Bytes()
}
