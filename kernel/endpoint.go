package kernel

// Endpoint identifies a message destination.
type Endpoint uint8

const (
	EPKernel Endpoint = iota
	EPKeypad
	EPCalc
	EPDisplay
	EPLogger

	numEndpoints
)

func (ep Endpoint) String() string {
	switch ep {
	case EPKernel:
		return "kernel"
	case EPKeypad:
		return "keypad"
	case EPCalc:
		return "calc"
	case EPDisplay:
		return "display"
	case EPLogger:
		return "logger"
	default:
		return "unknown"
	}
}

func (ep Endpoint) valid() bool { return ep < numEndpoints }
