package cci

import (
	"fmt"

	"github.com/thermalview/lepton.go/pkg/clock"
)

// BusyTimeout is the budget for one busy-bit wait, in milliseconds.
const BusyTimeout uint64 = 1000

// busTimeout is the per-byte budget handed down to the word bus.
const busTimeout uint64 = 100

// WordBus is the word-level bus surface the protocol needs. It is
// satisfied by bus.Transport, the i2cdev adapter, and the simulated
// camera.
type WordBus interface {
	WriteWord(addr uint8, v uint16, timeout uint64) error
	WriteWords(addr uint8, words []uint16, timeout uint64) error
	ReadWord(addr uint8, timeout uint64) (uint16, error)
	ReadWords(addr uint8, out []uint16, timeout uint64) error
}

// Device drives one camera over a word bus. It owns the bus for the
// duration of each call and keeps the last error code latched from the
// STATUS register; it is used from one logical thread of control.
type Device struct {
	Bus   WordBus
	Clock clock.Source
	Addr  uint8

	lastResult Result
}

// New creates a Device at the camera's default address.
func New(b WordBus, clk clock.Source) *Device {
	return &Device{Bus: b, Clock: clk, Addr: DeviceAddress}
}

// ReadRegister reads one 16-bit register. The device has no separate
// address phase, so the register pointer is written first and the
// value read back.
func (d *Device) ReadRegister(reg uint16) (uint16, error) {
	if err := d.Bus.WriteWord(d.Addr, reg, busTimeout); err != nil {
		return 0, err
	}
	return d.Bus.ReadWord(d.Addr, busTimeout)
}

// WriteRegister writes one 16-bit register as a contiguous
// address/value pair.
func (d *Device) WriteRegister(reg, value uint16) error {
	return d.Bus.WriteWords(d.Addr, []uint16{reg, value}, busTimeout)
}

// WaitNotBusy blocks until the camera's busy bit clears, polling the
// STATUS register every millisecond up to timeout milliseconds. On
// success the error code field is latched for LastError. A register
// read failure is a hard failure, distinct from ErrBusyTimeout.
func (d *Device) WaitNotBusy(timeout uint64) error {
	status, err := d.ReadRegister(RegStatus)
	if err != nil {
		return fmt.Errorf("cci: read status: %w", err)
	}
	if status&StatusBusyBit == 0 {
		d.latch(status)
		return nil
	}

	deadline := d.Clock.Millis() + timeout
	for status&StatusBusyBit != 0 && d.Clock.Millis() < deadline {
		d.Clock.SleepMillis(1)
		if status, err = d.ReadRegister(RegStatus); err != nil {
			return fmt.Errorf("cci: read status: %w", err)
		}
	}
	if status&StatusBusyBit != 0 {
		return ErrBusyTimeout
	}
	d.latch(status)
	return nil
}

func (d *Device) latch(status uint16) {
	d.lastResult = Result(int8(uint8((status & StatusErrorMask) >> StatusErrorShift)))
}

// LastError returns the error code latched from the most recent
// successful busy wait. There is no reset: it always reflects the last
// observed status, and a non-zero code is not a hard failure by itself.
func (d *Device) LastError() Result {
	return d.lastResult
}

// GetCommand issues a read-type command and fills out with the
// returned data block. The camera must be idle before and after the
// command register write; the declared data length must match
// 2*len(out) exactly. Any step failing aborts the whole call.
func (d *Device) GetCommand(code uint16, out []uint16) error {
	if err := d.WaitNotBusy(BusyTimeout); err != nil {
		return err
	}
	if err := d.WriteRegister(RegCommand, code); err != nil {
		return fmt.Errorf("cci: write command: %w", err)
	}
	if err := d.WaitNotBusy(BusyTimeout); err != nil {
		return err
	}
	return d.readData(out)
}

// SetCommand writes the payload and issues a write-type command, then
// waits for the camera to accept and process it.
func (d *Device) SetCommand(code uint16, in []uint16) error {
	if err := d.WaitNotBusy(BusyTimeout); err != nil {
		return err
	}
	if err := d.writeData(in); err != nil {
		return err
	}
	if err := d.WriteRegister(RegCommand, code); err != nil {
		return fmt.Errorf("cci: write command: %w", err)
	}
	return d.WaitNotBusy(BusyTimeout)
}

func (d *Device) readData(out []uint16) error {
	if err := d.Bus.WriteWord(d.Addr, RegDataLength, busTimeout); err != nil {
		return fmt.Errorf("cci: point data length: %w", err)
	}
	// The length register reports bytes, not the words the datasheet
	// promises: getting the customer serial declares 32, not 16. Trust
	// the byte count.
	declared, err := d.Bus.ReadWord(d.Addr, busTimeout)
	if err != nil {
		return fmt.Errorf("cci: read data length: %w", err)
	}
	want := uint16(2 * len(out))
	if declared == 0 || declared != want {
		return &DataLengthError{Declared: declared, Want: want}
	}

	reg := RegData0
	if len(out) > DirectDataWords {
		reg = RegDataBuffer
	}
	if err := d.Bus.WriteWord(d.Addr, reg, busTimeout); err != nil {
		return fmt.Errorf("cci: point data: %w", err)
	}
	if err := d.Bus.ReadWords(d.Addr, out, busTimeout); err != nil {
		return fmt.Errorf("cci: read data: %w", err)
	}
	return nil
}

func (d *Device) writeData(in []uint16) error {
	if len(in) == 0 {
		return nil
	}
	if err := d.WriteRegister(RegDataLength, uint16(len(in))); err != nil {
		return fmt.Errorf("cci: write data length: %w", err)
	}
	reg := RegData0
	if len(in) > DirectDataWords {
		reg = RegDataBuffer
	}
	words := make([]uint16, 0, len(in)+1)
	words = append(words, reg)
	words = append(words, in...)
	if err := d.Bus.WriteWords(d.Addr, words, busTimeout); err != nil {
		return fmt.Errorf("cci: write data: %w", err)
	}
	return nil
}
