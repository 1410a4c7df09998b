// Package i2cdev adapts a periph.io I²C bus to the word-level surface
// the command protocol runs on. Hosts with a kernel I²C stack do not
// expose the controller's flag level, so transfers go through whole
// transactions and per-byte timing is left to the kernel driver.
package i2cdev

import (
	"periph.io/x/periph/conn/i2c"
)

// Bus is a word-level bus over a periph.io I²C bus.
type Bus struct {
	Conn i2c.Bus
}

// New wraps an opened I²C bus.
func New(conn i2c.Bus) *Bus {
	return &Bus{Conn: conn}
}

// WriteWord writes one big-endian word to addr.
func (b *Bus) WriteWord(addr uint8, v uint16, timeout uint64) error {
	return b.Conn.Tx(uint16(addr), []byte{byte(v >> 8), byte(v)}, nil)
}

// WriteWords writes words to addr as one transaction, high byte first
// for each word, array order preserved.
func (b *Bus) WriteWords(addr uint8, words []uint16, timeout uint64) error {
	buf := make([]byte, 0, 2*len(words))
	for _, w := range words {
		buf = append(buf, byte(w>>8), byte(w))
	}
	return b.Conn.Tx(uint16(addr), buf, nil)
}

// ReadWord reads one big-endian word from addr.
func (b *Bus) ReadWord(addr uint8, timeout uint64) (uint16, error) {
	var r [2]byte
	if err := b.Conn.Tx(uint16(addr), nil, r[:]); err != nil {
		return 0, err
	}
	return uint16(r[0])<<8 | uint16(r[1]), nil
}

// ReadWords fills out from one transaction of 2*len(out) bytes.
func (b *Bus) ReadWords(addr uint8, out []uint16, timeout uint64) error {
	buf := make([]byte, 2*len(out))
	if err := b.Conn.Tx(uint16(addr), nil, buf); err != nil {
		return err
	}
	for i := range out {
		out[i] = uint16(buf[2*i])<<8 | uint16(buf[2*i+1])
	}
	return nil
}
