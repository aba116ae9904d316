package lnwire

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrCursorPoisoned is returned by Err once a Cursor has failed to satisfy a
// prior read. All reads issued after poisoning are no-ops that return the
// zero value of their result type, mirroring the sticky-cursor decode
// convention this codec follows.
var ErrCursorPoisoned = errors.New("lnwire: cursor poisoned by short read")

// Cursor is a sticky-error byte reader used by every primitive decoder in
// this package. Once a read runs past the end of the underlying buffer, the
// cursor records the failure and every subsequent read becomes a silent
// no-op, so a caller only needs to check Err once at the end of a decode
// sequence instead of after every field.
type Cursor struct {
	buf []byte
	err error
}

// NewCursor wraps buf in a fresh, unpoisoned Cursor.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Err returns the terminal error the cursor accumulated, or nil if every
// read so far has been satisfied in full.
func (c *Cursor) Err() error {
	return c.err
}

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// take returns the next n bytes and advances the cursor, or poisons the
// cursor and returns nil if fewer than n bytes remain.
func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if len(c.buf) < n {
		c.err = ErrCursorPoisoned
		c.buf = nil
		return nil
	}

	b := c.buf[:n]
	c.buf = c.buf[n:]
	return b
}

// Uint8 reads a single big-endian byte.
func (c *Cursor) Uint8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Uint16 reads a big-endian uint16.
func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// Uint32 reads a big-endian uint32.
func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// Uint64 reads a big-endian uint64.
func (c *Cursor) Uint64() uint64 {
	b := c.take(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// Uint24 reads a big-endian 3-byte unsigned integer, as used by
// ShortChannelID's block height and transaction index fields.
func (c *Cursor) Uint24() uint32 {
	b := c.take(3)
	if b == nil {
		return 0
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// Bool reads a single byte and interprets it as a boolean. A byte value
// other than 0 or 1 poisons the cursor, matching the original wire format's
// strict boolean encoding.
func (c *Cursor) Bool() bool {
	v := c.Uint8()
	if c.err != nil {
		return false
	}
	switch v {
	case 0:
		return false
	case 1:
		return true
	default:
		c.err = errors.New("lnwire: invalid boolean encoding")
		return false
	}
}

// Bytes reads exactly n bytes and returns a copy of them.
func (c *Cursor) Bytes(n int) []byte {
	b := c.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Fixed reads exactly len(dst) bytes into dst in place.
func (c *Cursor) Fixed(dst []byte) {
	b := c.take(len(dst))
	if b == nil {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	copy(dst, b)
}

// Decoder is implemented by any wire value which can read its own
// representation from a Cursor.
type Decoder interface {
	Decode(r *Cursor)
}

// Decode reads a full message body from r into a fresh Cursor and returns
// any poisoning error encountered while dec consumed it.
func Decode(r io.Reader, dec Decoder) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	c := NewCursor(buf)
	dec.Decode(c)
	return c.Err()
}
