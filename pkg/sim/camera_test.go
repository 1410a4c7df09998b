package sim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thermalview/lepton.go/pkg/cci"
	"github.com/thermalview/lepton.go/pkg/clock"
	"github.com/thermalview/lepton.go/pkg/sim"
)

func TestDefaultCameraAnswersQueries(t *testing.T) {
	dev := cci.New(sim.NewDefaultCamera(), &clock.Simulated{})

	serial, err := dev.GetSerial()
	require.NoError(t, err)
	require.Equal(t, uint64(0x3039), serial)

	uptime, err := dev.GetUptime()
	require.NoError(t, err)
	require.Equal(t, int64(0x1000), int64(uptime.Milliseconds()))

	temp, err := dev.GetFPATemp()
	require.NoError(t, err)
	require.InDelta(t, 30.0, temp, 0.01)

	enabled, err := dev.GetAGC()
	require.NoError(t, err)
	require.False(t, enabled)

	require.Equal(t, cci.OK, dev.LastError())
}

func TestCameraRecordsSetTraffic(t *testing.T) {
	cam := &sim.Camera{}
	dev := cci.New(cam, &clock.Simulated{})

	require.NoError(t, dev.SetAGC(true))

	code := cci.ComposeCommand(cci.AGCEnable, cci.Set)
	require.Equal(t, code, cam.LastCommand)
	require.Equal(t, []uint16{1, 0}, cam.SetPayloads[code])
	require.Equal(t, cci.RegData0, cam.SetWindows[code])
}
