package bus

// Word transfers pack 16-bit values big-endian, high byte first, both
// ways. Any byte-level failure aborts the whole transfer; partially
// filled output is undefined.

// WriteWord writes one word to addr as a 2-byte transaction.
func (t *Transport) WriteWord(addr uint8, v uint16, timeout uint64) error {
	t.BeginWrite(addr, 2)
	if err := t.WriteByte(byte(v>>8), timeout); err != nil {
		return err
	}
	return t.WriteByte(byte(v), timeout)
}

// WriteWords streams words to addr as one 2*len(words) byte
// transaction, preserving array order.
func (t *Transport) WriteWords(addr uint8, words []uint16, timeout uint64) error {
	t.BeginWrite(addr, 2*len(words))
	for _, w := range words {
		if err := t.WriteByte(byte(w>>8), timeout); err != nil {
			return err
		}
		if err := t.WriteByte(byte(w), timeout); err != nil {
			return err
		}
	}
	return nil
}

// ReadWord reads one word from addr.
func (t *Transport) ReadWord(addr uint8, timeout uint64) (uint16, error) {
	t.BeginRead(addr, 2)
	hi, err := t.ReadByte(timeout)
	if err != nil {
		return 0, err
	}
	lo, err := t.ReadByte(timeout)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// ReadWords fills out from a single 2*len(out) byte read, assembling
// successive byte pairs in order.
func (t *Transport) ReadWords(addr uint8, out []uint16, timeout uint64) error {
	t.BeginRead(addr, 2*len(out))
	for i := range out {
		hi, err := t.ReadByte(timeout)
		if err != nil {
			return err
		}
		lo, err := t.ReadByte(timeout)
		if err != nil {
			return err
		}
		out[i] = uint16(hi)<<8 | uint16(lo)
	}
	return nil
}
