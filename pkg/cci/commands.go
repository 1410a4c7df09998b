package cci

import (
	"time"
)

// Typed wrappers over the documented command set. Multi-word values
// arrive least significant word first.

// Status is the SYS camera status block.
type Status struct {
	CameraStatus uint32
	CommandCount uint16
}

// Polarity selects the video polarity.
type Polarity uint16

// Polarity values.
const (
	WhiteHot Polarity = 0
	BlackHot Polarity = 1
)

func u32(lo, hi uint16) uint32 {
	return uint32(hi)<<16 | uint32(lo)
}

// GetStatus reads the SYS camera status.
func (d *Device) GetStatus() (Status, error) {
	var w [4]uint16
	if err := d.GetCommand(ComposeCommand(SYSStatus, Get), w[:]); err != nil {
		return Status{}, err
	}
	return Status{CameraStatus: u32(w[0], w[1]), CommandCount: w[2]}, nil
}

// GetSerial reads the camera serial number.
func (d *Device) GetSerial() (uint64, error) {
	var w [4]uint16
	if err := d.GetCommand(ComposeCommand(SYSSerial, Get), w[:]); err != nil {
		return 0, err
	}
	return uint64(w[3])<<48 | uint64(w[2])<<32 | uint64(w[1])<<16 | uint64(w[0]), nil
}

// GetUptime reads the camera uptime.
func (d *Device) GetUptime() (time.Duration, error) {
	var w [2]uint16
	if err := d.GetCommand(ComposeCommand(SYSUptime, Get), w[:]); err != nil {
		return 0, err
	}
	return time.Duration(u32(w[0], w[1])) * time.Millisecond, nil
}

// GetFPATemp reads the focal plane array temperature in °C. The camera
// reports centikelvin.
func (d *Device) GetFPATemp() (float64, error) {
	var w [1]uint16
	if err := d.GetCommand(ComposeCommand(SYSFPATemp, Get), w[:]); err != nil {
		return 0, err
	}
	return float64(w[0])/100 - 273.15, nil
}

// GetAuxTemp reads the auxiliary temperature sensor in °C.
func (d *Device) GetAuxTemp() (float64, error) {
	var w [1]uint16
	if err := d.GetCommand(ComposeCommand(SYSAuxTemp, Get), w[:]); err != nil {
		return 0, err
	}
	return float64(w[0])/100 - 273.15, nil
}

// SetAGC enables or disables automatic gain correction.
func (d *Device) SetAGC(enable bool) error {
	v := uint16(0)
	if enable {
		v = 1
	}
	return d.SetCommand(ComposeCommand(AGCEnable, Set), []uint16{v, 0})
}

// GetAGC reads the automatic gain correction state.
func (d *Device) GetAGC() (bool, error) {
	var w [2]uint16
	if err := d.GetCommand(ComposeCommand(AGCEnable, Get), w[:]); err != nil {
		return false, err
	}
	return w[0] != 0, nil
}

// SetPolarity selects the video polarity.
func (d *Device) SetPolarity(p Polarity) error {
	return d.SetCommand(ComposeCommand(VIDPolarity, Set), []uint16{uint16(p), 0})
}

// GetPolarity reads the video polarity.
func (d *Device) GetPolarity() (Polarity, error) {
	var w [2]uint16
	if err := d.GetCommand(ComposeCommand(VIDPolarity, Get), w[:]); err != nil {
		return 0, err
	}
	return Polarity(w[0]), nil
}

// RunFFC triggers a flat field correction cycle.
func (d *Device) RunFFC() error {
	return d.SetCommand(ComposeCommand(SYSFFCNorm, Run), nil)
}
