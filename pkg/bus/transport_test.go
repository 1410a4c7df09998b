package bus

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thermalview/lepton.go/pkg/clock"
)

// stubController records the setup sequence and simulates the byte
// readiness flags. Stuck flags advance the simulated clock so timeout
// paths terminate.
type stubController struct {
	ops []string
	tx  []byte
	rx  []byte

	stuckNack bool
	noData    bool
	clk       *clock.Simulated
}

func (s *stubController) SetTarget(addr uint8) {
	s.ops = append(s.ops, fmt.Sprintf("target %#02x", addr))
}

func (s *stubController) SetDirection(d Direction) {
	if d == Write {
		s.ops = append(s.ops, "dir write")
	} else {
		s.ops = append(s.ops, "dir read")
	}
}

func (s *stubController) SetTransferCount(n int) {
	s.ops = append(s.ops, fmt.Sprintf("count %d", n))
}

func (s *stubController) EnableAutoEnd() {
	s.ops = append(s.ops, "autoend")
}

func (s *stubController) Start() {
	s.ops = append(s.ops, "start")
}

func (s *stubController) TransmitReady() bool {
	return true
}

func (s *stubController) Nack() bool {
	if s.stuckNack {
		s.clk.Advance(1)
		return true
	}
	return false
}

func (s *stubController) ReceiveReady() bool {
	if s.noData || len(s.rx) == 0 {
		s.clk.Advance(1)
		return false
	}
	return true
}

func (s *stubController) Send(b byte) {
	s.tx = append(s.tx, b)
}

func (s *stubController) Recv() byte {
	b := s.rx[0]
	s.rx = s.rx[1:]
	return b
}

func newStub() (*stubController, *Transport) {
	clk := &clock.Simulated{}
	ctrl := &stubController{clk: clk}
	return ctrl, New(ctrl, clk)
}

func TestBeginWriteOrder(t *testing.T) {
	ctrl, tr := newStub()
	tr.BeginWrite(0x2A, 4)
	// Auto-end is armed before the start condition for writes.
	require.Equal(t, []string{
		"target 0x2a", "dir write", "count 4", "autoend", "start",
	}, ctrl.ops)
}

func TestBeginReadOrder(t *testing.T) {
	ctrl, tr := newStub()
	tr.BeginRead(0x2A, 2)
	// The start condition comes first for reads, auto-end right after.
	require.Equal(t, []string{
		"target 0x2a", "dir read", "count 2", "start", "autoend",
	}, ctrl.ops)
}

func TestWriteByte(t *testing.T) {
	ctrl, tr := newStub()
	tr.BeginWrite(0x2A, 1)
	require.NoError(t, tr.WriteByte(0xA5, DefaultTimeout))
	require.Equal(t, []byte{0xA5}, ctrl.tx)
}

func TestWriteByteNackTimeout(t *testing.T) {
	ctrl, tr := newStub()
	ctrl.stuckNack = true
	tr.BeginWrite(0x2A, 1)
	err := tr.WriteByte(0xA5, 10)
	require.Equal(t, ErrTimeout, err)
	require.Empty(t, ctrl.tx, "nothing transmits after a timeout")
}

func TestReadByte(t *testing.T) {
	ctrl, tr := newStub()
	ctrl.rx = []byte{0x5A}
	tr.BeginRead(0x2A, 1)
	b, err := tr.ReadByte(DefaultTimeout)
	require.NoError(t, err)
	require.Equal(t, byte(0x5A), b)
}

func TestReadByteTimeout(t *testing.T) {
	ctrl, tr := newStub()
	ctrl.noData = true
	tr.BeginRead(0x2A, 1)
	_, err := tr.ReadByte(10)
	require.Equal(t, ErrTimeout, err)
}
