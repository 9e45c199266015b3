// Package proto defines the message kinds exchanged between CalcSat tasks and
// their payload encodings.
package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgLogLine Kind = iota + 1
	MsgKey
	MsgFrame
	MsgPage
	MsgExpr
)

func (k Kind) String() string {
	switch k {
	case MsgLogLine:
		return "log_line"
	case MsgKey:
		return "key"
	case MsgFrame:
		return "frame"
	case MsgPage:
		return "page"
	case MsgExpr:
		return "expr"
	default:
		return "unknown"
	}
}

// MaxLineLen bounds one display line inside a payload. It covers the widest
// HD44780 panel (40 columns).
const MaxLineLen = 40
