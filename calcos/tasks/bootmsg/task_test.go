package bootmsg

import (
	"testing"

	"calcsat/calcos/proto"
	"calcsat/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepSendsBannerOnce(t *testing.T) {
	sys := kernel.NewSystem()
	task := New()
	task.Step(sys)
	task.Step(sys)

	require.Equal(t, 2, sys.Pending(kernel.EPDisplay))
	msg, _ := sys.TryRecv(kernel.EPDisplay)
	hold, top, bottom, ok := proto.DecodePagePayload(msg.Payload())
	require.True(t, ok)
	assert.Equal(t, uint32(bannerHoldMs), hold)
	assert.Equal(t, "   CalcSat v1", top)
	assert.Equal(t, "  build dev", bottom)

	assert.Equal(t, 1, sys.Pending(kernel.EPLogger))
}
