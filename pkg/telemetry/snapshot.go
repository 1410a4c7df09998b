package telemetry

import (
	"time"

	"github.com/thermalview/lepton.go/pkg/cci"
)

// Snapshot is one camera health sample.
type Snapshot struct {
	MachineID    string  `json:"machine_id,omitempty"`
	CameraStatus uint32  `json:"camera_status"`
	CommandCount uint16  `json:"command_count"`
	UptimeMillis int64   `json:"uptime_ms"`
	FPATempC     float64 `json:"fpa_temp_c"`
	LastError    string  `json:"last_error"`
}

// Sampler reads one snapshot from the camera.
type Sampler interface {
	Sample() (Snapshot, error)
}

// DeviceSampler samples a camera device.
type DeviceSampler struct {
	Device    *cci.Device
	MachineID string
}

// Sample implements Sampler.
func (s *DeviceSampler) Sample() (Snapshot, error) {
	status, err := s.Device.GetStatus()
	if err != nil {
		return Snapshot{}, err
	}
	uptime, err := s.Device.GetUptime()
	if err != nil {
		return Snapshot{}, err
	}
	temp, err := s.Device.GetFPATemp()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		MachineID:    s.MachineID,
		CameraStatus: status.CameraStatus,
		CommandCount: status.CommandCount,
		UptimeMillis: int64(uptime / time.Millisecond),
		FPATempC:     temp,
		LastError:    s.Device.LastError().String(),
	}, nil
}
