package bus

// Direction selects the transfer direction of one transaction.
type Direction int

// Transfer directions.
const (
	Read Direction = iota
	Write
)

// Controller is the flag-level surface of the bus controller
// peripheral. Implementations map these calls onto the hardware's
// control and status registers; the Transport owns sequencing and
// timing and drives exactly one transaction at a time.
type Controller interface {
	// SetTarget programs the 7-bit device address.
	SetTarget(addr uint8)
	// SetDirection sets the transfer direction.
	SetDirection(d Direction)
	// SetTransferCount declares the number of bytes to transfer.
	SetTransferCount(n int)
	// EnableAutoEnd arms automatic termination once the declared
	// count has transferred.
	EnableAutoEnd()
	// Start issues the start condition.
	Start()

	// TransmitReady reports the transmit data register is empty.
	TransmitReady() bool
	// Nack reports the device did not acknowledge the last byte.
	Nack() bool
	// ReceiveReady reports a received byte is waiting.
	ReceiveReady() bool

	// Send writes one byte into the data register.
	Send(b byte)
	// Recv reads one byte from the data register.
	Recv() byte
}
