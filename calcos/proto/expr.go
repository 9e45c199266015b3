package proto

import "encoding/binary"

// ExprPayload announces that an expression was published to the shared
// buffer. The payload carries the buffer sequence number (u32, little-endian);
// the text itself is read from the buffer.
func ExprPayload(seq uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, seq)
	return b
}

func DecodeExprPayload(b []byte) (seq uint32, ok bool) {
	if len(b) != 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}
