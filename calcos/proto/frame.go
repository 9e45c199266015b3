package proto

import "encoding/binary"

// FramePayload encodes the two display lines of a MsgFrame.
//
// Layout:
//   - u8: len(top), bytes: top
//   - u8: len(bottom), bytes: bottom
//
// Lines longer than MaxLineLen are cut.
func FramePayload(top, bottom string) []byte {
	top, bottom = cutLine(top), cutLine(bottom)
	buf := make([]byte, 0, 2+len(top)+len(bottom))
	buf = append(buf, byte(len(top)))
	buf = append(buf, top...)
	buf = append(buf, byte(len(bottom)))
	buf = append(buf, bottom...)
	return buf
}

func DecodeFramePayload(b []byte) (top, bottom string, ok bool) {
	top, rest, ok := readLine(b)
	if !ok {
		return "", "", false
	}
	bottom, rest, ok = readLine(rest)
	if !ok || len(rest) != 0 {
		return "", "", false
	}
	return top, bottom, true
}

// PagePayload encodes a MsgPage: two lines held on the panel for holdMs.
//
// Layout (little-endian):
//   - u32: hold in milliseconds
//   - frame layout as in FramePayload
func PagePayload(holdMs uint32, top, bottom string) []byte {
	frame := FramePayload(top, bottom)
	buf := make([]byte, 4, 4+len(frame))
	binary.LittleEndian.PutUint32(buf, holdMs)
	return append(buf, frame...)
}

func DecodePagePayload(b []byte) (holdMs uint32, top, bottom string, ok bool) {
	if len(b) < 4 {
		return 0, "", "", false
	}
	top, bottom, ok = DecodeFramePayload(b[4:])
	if !ok {
		return 0, "", "", false
	}
	return binary.LittleEndian.Uint32(b[:4]), top, bottom, true
}

func cutLine(s string) string {
	if len(s) > MaxLineLen {
		return s[:MaxLineLen]
	}
	return s
}

func readLine(b []byte) (line string, rest []byte, ok bool) {
	if len(b) < 1 {
		return "", nil, false
	}
	n := int(b[0])
	if n > MaxLineLen || len(b) < 1+n {
		return "", nil, false
	}
	return string(b[1 : 1+n]), b[1+n:], true
}
