package cci_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thermalview/lepton.go/pkg/cci"
	"github.com/thermalview/lepton.go/pkg/sim"
)

func TestGetSerial(t *testing.T) {
	code := cci.ComposeCommand(cci.SYSSerial, cci.Get)
	cam := &sim.Camera{
		Payloads: map[uint16][]uint16{code: {0x4455, 0x2233, 0x0011, 0xAABB}},
	}
	dev, _ := newDevice(cam)

	serial, err := dev.GetSerial()
	require.NoError(t, err)
	require.Equal(t, uint64(0xAABB001122334455), serial)
}

func TestGetUptime(t *testing.T) {
	code := cci.ComposeCommand(cci.SYSUptime, cci.Get)
	cam := &sim.Camera{
		// 0x055E3EC8 ms, least significant word first.
		Payloads: map[uint16][]uint16{code: {0x3EC8, 0x055E}},
	}
	dev, _ := newDevice(cam)

	uptime, err := dev.GetUptime()
	require.NoError(t, err)
	require.Equal(t, 90062536*time.Millisecond, uptime)
}

func TestGetFPATemp(t *testing.T) {
	code := cci.ComposeCommand(cci.SYSFPATemp, cci.Get)
	cam := &sim.Camera{
		// 303.15 K == 30 °C, in centikelvin.
		Payloads: map[uint16][]uint16{code: {30315}},
	}
	dev, _ := newDevice(cam)

	temp, err := dev.GetFPATemp()
	require.NoError(t, err)
	require.InDelta(t, 30.0, temp, 0.001)
}

func TestSetAGC(t *testing.T) {
	cam := &sim.Camera{}
	dev, _ := newDevice(cam)

	require.NoError(t, dev.SetAGC(true))
	code := cci.ComposeCommand(cci.AGCEnable, cci.Set)
	require.Equal(t, []uint16{1, 0}, cam.SetPayloads[code])

	require.NoError(t, dev.SetAGC(false))
	require.Equal(t, []uint16{0, 0}, cam.SetPayloads[code])
}

func TestGetPolarity(t *testing.T) {
	code := cci.ComposeCommand(cci.VIDPolarity, cci.Get)
	cam := &sim.Camera{
		Payloads: map[uint16][]uint16{code: {uint16(cci.BlackHot), 0}},
	}
	dev, _ := newDevice(cam)

	p, err := dev.GetPolarity()
	require.NoError(t, err)
	require.Equal(t, cci.BlackHot, p)
}

func TestRunFFC(t *testing.T) {
	cam := &sim.Camera{}
	dev, _ := newDevice(cam)
	require.NoError(t, dev.RunFFC())
	require.Equal(t, uint16(0x0242), cam.LastCommand)
}

func TestResultString(t *testing.T) {
	require.Equal(t, "OK", cci.OK.String())
	require.Equal(t, "not ready", cci.NotReady.String())
	require.Equal(t, "code -42", cci.Result(-42).String())
}
