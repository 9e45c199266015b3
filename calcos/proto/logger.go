package proto

// LogLinePayload encodes a MsgLogLine payload.
//
// Convention:
// - Payload is UTF-8 bytes without a trailing newline.
// - Delivery is best-effort; callers may drop on overflow.
func LogLinePayload(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}
