package sim

import (
	"github.com/thermalview/lepton.go/pkg/cci"
)

// NewDefaultCamera returns a camera preloaded with plausible data, for
// the offline shell.
func NewDefaultCamera() *Camera {
	return &Camera{
		Payloads: map[uint16][]uint16{
			cci.ComposeCommand(cci.SYSStatus, cci.Get):   {0, 0, 0, 0},
			cci.ComposeCommand(cci.SYSSerial, cci.Get):   {0x3039, 0x0000, 0x0000, 0x0000},
			cci.ComposeCommand(cci.SYSUptime, cci.Get):   {0x1000, 0x0000},
			cci.ComposeCommand(cci.SYSFPATemp, cci.Get):  {30315},
			cci.ComposeCommand(cci.SYSAuxTemp, cci.Get):  {29815},
			cci.ComposeCommand(cci.AGCEnable, cci.Get):   {0, 0},
			cci.ComposeCommand(cci.VIDPolarity, cci.Get): {0, 0},
		},
	}
}
