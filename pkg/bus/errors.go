package bus

import "errors"

// ErrTimeout indicates a byte-level wait exceeded its budget. The
// in-progress transaction is dead; the caller must treat the whole
// higher-level operation as failed.
var ErrTimeout = errors.New("bus: timeout")
