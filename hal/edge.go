package hal

// EdgeDetector turns level samples of a scanned keypad into presses.
//
// A sample is the key currently held, or 0 for none. A press is reported when
// the sample is a key and differs from the previous sample, so a held key
// fires once and two keys rolled over fire in order.
type EdgeDetector struct {
	last byte
}

// Sample feeds one scan result.
func (d *EdgeDetector) Sample(key byte) (byte, bool) {
	prev := d.last
	d.last = key
	if key == 0 || key == prev {
		return 0, false
	}
	return key, true
}

// Reset forgets the held key.
func (d *EdgeDetector) Reset() { d.last = 0 }
