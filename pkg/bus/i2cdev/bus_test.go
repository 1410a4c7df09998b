package i2cdev

import (
	"testing"

	"github.com/stretchr/testify/require"
	"periph.io/x/periph/conn/physic"
)

// recordBus captures transactions and answers reads from a queue.
type recordBus struct {
	addr   uint16
	writes [][]byte
	reads  [][]byte
}

func (r *recordBus) String() string { return "record" }

func (r *recordBus) SetSpeed(f physic.Frequency) error { return nil }

func (r *recordBus) Tx(addr uint16, w, rd []byte) error {
	r.addr = addr
	if len(w) > 0 {
		r.writes = append(r.writes, append([]byte(nil), w...))
	}
	if len(rd) > 0 {
		copy(rd, r.reads[0])
		r.reads = r.reads[1:]
	}
	return nil
}

func TestWriteWords(t *testing.T) {
	rec := &recordBus{}
	b := New(rec)
	require.NoError(t, b.WriteWords(0x2A, []uint16{0x0004, 0x4839}, 0))
	require.Equal(t, uint16(0x2A), rec.addr)
	require.Equal(t, [][]byte{{0x00, 0x04, 0x48, 0x39}}, rec.writes)
}

func TestReadWords(t *testing.T) {
	rec := &recordBus{reads: [][]byte{{0xBE, 0xEF, 0x01, 0x02}}}
	b := New(rec)
	out := make([]uint16, 2)
	require.NoError(t, b.ReadWords(0x2A, out, 0))
	require.Equal(t, []uint16{0xBEEF, 0x0102}, out)
}

func TestReadWord(t *testing.T) {
	rec := &recordBus{reads: [][]byte{{0x12, 0x34}}}
	b := New(rec)
	v, err := b.ReadWord(0x2A, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), v)
}
