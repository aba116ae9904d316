package lnwire

// MessageType is the 2-byte big-endian type prefix that identifies the
// payload following it on the wire.
type MessageType uint16

// PeekMessageType reads the 2-byte message type prefixing payload without
// consuming the rest of the message, mirroring fromwire_peektype's
// non-destructive peek. It returns false if fewer than 2 bytes are present.
func PeekMessageType(payload []byte) (MessageType, bool) {
	if len(payload) < 2 {
		return 0, false
	}

	c := NewCursor(payload[:2])
	t := MessageType(c.Uint16())

	return t, c.Err() == nil
}
