package calc

import (
	"math"
	"strconv"
)

const (
	formatEpsilon   = 1e-4
	formatMaxDigits = 4

	// Beyond this the integer part no longer fits the digit loop and the value
	// is shown in exponent form.
	formatIntLimit = 1e15
)

// Format renders v into a display string that fits a buffer of the given
// capacity, terminator included. At most four fractional digits are kept, so
// the result is lossy.
func Format(v float64, capacity int) string {
	if v == 0 {
		return clip("0", capacity)
	}
	switch {
	case math.IsNaN(v):
		return clip("NaN", capacity)
	case math.IsInf(v, 1):
		return clip("Inf", capacity)
	case math.IsInf(v, -1):
		return clip("-Inf", capacity)
	case math.Abs(v) >= formatIntLimit:
		return formatExp(v, capacity)
	}

	intPart := int64(v)
	frac := math.Abs(v - float64(intPart))

	buf := make([]byte, 0, capacity)
	if v < 0 && intPart == 0 {
		buf = append(buf, '-')
	}
	buf = strconv.AppendInt(buf, intPart, 10)
	if len(buf) > capacity-1 {
		buf = buf[:capacity-1]
	}

	if frac > formatEpsilon && len(buf) < capacity-3 {
		buf = append(buf, '.')
		for n := 0; frac > formatEpsilon && n < formatMaxDigits && len(buf) < capacity-1; n++ {
			frac *= 10
			d := int(frac)
			buf = append(buf, byte('0'+d))
			frac -= float64(d)
		}
	}
	return string(buf)
}

// formatExp renders v in exponent form, dropping mantissa digits until it
// fits so the exponent is never clipped.
func formatExp(v float64, capacity int) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	for prec := 15; len(s) > capacity-1 && prec > 0; prec-- {
		s = strconv.FormatFloat(v, 'g', prec, 64)
	}
	return clip(s, capacity)
}
