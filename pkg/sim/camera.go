// Package sim provides in-memory stand-ins for the camera and the
// model executor, for tests and the shell's offline mode.
package sim

import (
	"github.com/thermalview/lepton.go/pkg/cci"
)

// Camera simulates the camera's control interface at the word-bus
// level. Behavior is scripted through the exported fields; the zero
// value answers every command with an empty data block.
//
// It is not safe for concurrent use, matching the single logical
// thread of control the real bus assumes.
type Camera struct {
	// BusyReads is the number of status reads that report busy
	// before the busy bit clears. StickyBusy keeps it set forever.
	BusyReads  int
	StickyBusy bool

	// ErrorCode is reported in the status error field once not busy.
	ErrorCode uint8

	// Payloads maps a command code to the data block a GET returns.
	Payloads map[uint16][]uint16

	// DeclaredBytes overrides the data length the camera reports for
	// a command code; without an entry it reports 2*len(payload).
	DeclaredBytes map[uint16]uint16

	// ReadErr, when set, fails every word read.
	ReadErr error

	// BusyAfterCommand arms BusyReads again on each command write.
	BusyAfterCommand int

	// Observed traffic.
	LastCommand    uint16
	SetPayloads    map[uint16][]uint16
	SetWindows     map[uint16]uint16
	LastReadWindow uint16

	pointer     uint16
	pendingData []uint16
	pendingWin  uint16
}

// WriteWord implements cci.WordBus: a single word write moves the
// register pointer.
func (c *Camera) WriteWord(addr uint8, v uint16, timeout uint64) error {
	c.pointer = v
	return nil
}

// WriteWords implements cci.WordBus: the first word addresses a
// register, the rest is its payload.
func (c *Camera) WriteWords(addr uint8, words []uint16, timeout uint64) error {
	if len(words) == 0 {
		return nil
	}
	reg, body := words[0], words[1:]
	c.pointer = reg
	switch reg {
	case cci.RegCommand:
		if len(body) > 0 {
			c.command(body[0])
		}
	case cci.RegDataLength:
		// Declared SET length; nothing to model beyond accepting it.
	case cci.RegData0, cci.RegDataBuffer:
		c.pendingData = append([]uint16(nil), body...)
		c.pendingWin = reg
	}
	return nil
}

func (c *Camera) command(code uint16) {
	c.LastCommand = code
	if c.pendingData != nil {
		if c.SetPayloads == nil {
			c.SetPayloads = make(map[uint16][]uint16)
			c.SetWindows = make(map[uint16]uint16)
		}
		c.SetPayloads[code] = c.pendingData
		c.SetWindows[code] = c.pendingWin
		c.pendingData = nil
	}
	c.BusyReads = c.BusyAfterCommand
}

// ReadWord implements cci.WordBus, answering for the register the
// pointer currently addresses.
func (c *Camera) ReadWord(addr uint8, timeout uint64) (uint16, error) {
	if c.ReadErr != nil {
		return 0, c.ReadErr
	}
	switch c.pointer {
	case cci.RegStatus:
		if c.StickyBusy {
			return cci.StatusBusyBit, nil
		}
		if c.BusyReads > 0 {
			c.BusyReads--
			return cci.StatusBusyBit, nil
		}
		return uint16(c.ErrorCode) << cci.StatusErrorShift, nil
	case cci.RegDataLength:
		if n, ok := c.DeclaredBytes[c.LastCommand]; ok {
			return n, nil
		}
		return uint16(2 * len(c.Payloads[c.LastCommand])), nil
	}
	return 0, nil
}

// ReadWords implements cci.WordBus, serving the pending GET payload.
func (c *Camera) ReadWords(addr uint8, out []uint16, timeout uint64) error {
	if c.ReadErr != nil {
		return c.ReadErr
	}
	c.LastReadWindow = c.pointer
	copy(out, c.Payloads[c.LastCommand])
	return nil
}
