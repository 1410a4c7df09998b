package cci

import "fmt"

// Result is the camera's command error code, latched from the STATUS
// register after each successful busy wait.
type Result int8

// Documented result codes.
const (
	OK                   Result = 0
	Error                Result = -1
	NotReady             Result = -2
	RangeError           Result = -3
	ChecksumError        Result = -4
	BadArgError          Result = -5
	DataSizeError        Result = -6
	UndefinedFunction    Result = -7
	FunctionNotSupported Result = -8
	DataOutOfRange       Result = -9
	CommandNotAllowed    Result = -11
)

var resultNames = map[Result]string{
	OK:                   "OK",
	Error:                "error",
	NotReady:             "not ready",
	RangeError:           "range error",
	ChecksumError:        "checksum error",
	BadArgError:          "bad argument",
	DataSizeError:        "data size error",
	UndefinedFunction:    "undefined function",
	FunctionNotSupported: "function not supported",
	DataOutOfRange:       "data out of range",
	CommandNotAllowed:    "command not allowed",
}

// String returns the documented name of the code.
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return fmt.Sprintf("code %d", int8(r))
}
