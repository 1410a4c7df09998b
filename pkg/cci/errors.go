package cci

import (
	"errors"
	"fmt"
)

// ErrBusyTimeout indicates the camera's busy bit never cleared within
// the wait budget. The command was not delivered or not completed.
var ErrBusyTimeout = errors.New("cci: busy bit never cleared")

// DataLengthError indicates the camera declared a pending data length
// incompatible with the requested word count. No data was trusted.
type DataLengthError struct {
	Declared uint16 // bytes the camera reported
	Want     uint16 // bytes the caller asked for
}

// Error implements error.
func (e *DataLengthError) Error() string {
	return fmt.Sprintf("cci: camera declared %d data bytes, want %d", e.Declared, e.Want)
}
