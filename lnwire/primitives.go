package lnwire

// This file gathers the free-standing read/write helpers for the fixed-width
// wire primitives, mirroring the fromwire_u8/u16/u32/u64/bool family and the
// WriteElement/ReadElement big-endian cases they were distilled from.

// Uint8 writes v as a single byte.
func Uint8(w *Writer, v uint8) { w.PutUint8(v) }

// ReadUint8 reads a single byte.
func ReadUint8(r *Cursor) uint8 { return r.Uint8() }

// Uint16 writes v as a big-endian uint16.
func Uint16(w *Writer, v uint16) { w.PutUint16(v) }

// ReadUint16 reads a big-endian uint16.
func ReadUint16(r *Cursor) uint16 { return r.Uint16() }

// Uint32 writes v as a big-endian uint32.
func Uint32(w *Writer, v uint32) { w.PutUint32(v) }

// ReadUint32 reads a big-endian uint32.
func ReadUint32(r *Cursor) uint32 { return r.Uint32() }

// Uint64 writes v as a big-endian uint64.
func Uint64(w *Writer, v uint64) { w.PutUint64(v) }

// ReadUint64 reads a big-endian uint64.
func ReadUint64(r *Cursor) uint64 { return r.Uint64() }

// Bool writes v as a single 0/1 byte.
func Bool(w *Writer, v bool) { w.PutBool(v) }

// ReadBool reads a single 0/1 byte, poisoning the cursor on any other value.
func ReadBool(r *Cursor) bool { return r.Bool() }

// Bytes writes b verbatim with no length prefix.
func Bytes(w *Writer, b []byte) { w.PutBytes(b) }

// ReadBytes reads exactly n bytes.
func ReadBytes(r *Cursor, n int) []byte { return r.Bytes(n) }
