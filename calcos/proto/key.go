package proto

// KeyPayload encodes a MsgKey payload: one keypad symbol byte.
func KeyPayload(sym byte) []byte { return []byte{sym} }

func DecodeKeyPayload(b []byte) (sym byte, ok bool) {
	if len(b) != 1 {
		return 0, false
	}
	return b[0], true
}
