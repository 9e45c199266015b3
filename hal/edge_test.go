package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEdgeDetectorOnePressPerHold(t *testing.T) {
	var d EdgeDetector
	var got []byte
	for _, s := range []byte{0, '1', '1', '1', 0, 0, '1', 0, 'A', 'A', '*', 0} {
		if k, ok := d.Sample(s); ok {
			got = append(got, k)
		}
	}
	assert.Equal(t, []byte{'1', '1', 'A', '*'}, got)
}

func TestEdgeDetectorReset(t *testing.T) {
	var d EdgeDetector
	_, ok := d.Sample('5')
	assert.True(t, ok)
	_, ok = d.Sample('5')
	assert.False(t, ok)

	d.Reset()
	k, ok := d.Sample('5')
	assert.True(t, ok)
	assert.Equal(t, byte('5'), k)
}
