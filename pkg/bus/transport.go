package bus

import (
	"github.com/thermalview/lepton.go/pkg/clock"
)

// DefaultTimeout is the uniform budget for every byte-level wait, in
// milliseconds.
const DefaultTimeout uint64 = 100

// Transport runs bus transactions over a Controller. It is not
// reentrant: one transaction may be outstanding at a time, and the
// caller owns the bus from Begin* until the transaction completes or
// times out.
type Transport struct {
	Controller Controller
	Clock      clock.Source
}

// New creates a Transport over the controller.
func New(ctrl Controller, clk clock.Source) *Transport {
	return &Transport{Controller: ctrl, Clock: clk}
}

// BeginWrite sets up and starts a write transaction of n bytes.
// Auto-end must be armed before the start condition is issued; the
// controller requires this order for writes.
func (t *Transport) BeginWrite(addr uint8, n int) {
	c := t.Controller
	c.SetTarget(addr)
	c.SetDirection(Write)
	c.SetTransferCount(n)
	c.EnableAutoEnd()
	c.Start()
}

// BeginRead sets up and starts a read transaction of n bytes. The
// start condition goes out first and auto-end is armed right after,
// which produces the repeated start the device expects. Folding this
// into BeginWrite's order breaks the read sequence on the wire.
func (t *Transport) BeginRead(addr uint8, n int) {
	c := t.Controller
	c.SetTarget(addr)
	c.SetDirection(Read)
	c.SetTransferCount(n)
	c.Start()
	c.EnableAutoEnd()
}

// WriteByte transmits one byte once the controller is ready, each wait
// bounded by timeout milliseconds. On timeout nothing is transmitted.
func (t *Transport) WriteByte(b byte, timeout uint64) error {
	for wait := true; wait; {
		if t.Controller.TransmitReady() {
			wait = false
		}
		if err := t.waitAck(timeout); err != nil {
			return err
		}
	}
	t.Controller.Send(b)
	return nil
}

// ReadByte returns one received byte, waiting at most timeout
// milliseconds for it to arrive.
func (t *Transport) ReadByte(timeout uint64) (byte, error) {
	if err := t.waitRecv(timeout); err != nil {
		return 0, err
	}
	return t.Controller.Recv(), nil
}

func (t *Transport) waitAck(timeout uint64) error {
	until := t.Clock.Millis() + timeout
	for t.Controller.Nack() {
		if t.Clock.Millis() > until {
			return ErrTimeout
		}
	}
	return nil
}

func (t *Transport) waitRecv(timeout uint64) error {
	until := t.Clock.Millis() + timeout
	for !t.Controller.ReceiveReady() {
		if t.Clock.Millis() > until {
			return ErrTimeout
		}
	}
	return nil
}
