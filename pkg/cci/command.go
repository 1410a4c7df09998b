package cci

// ComposeCommand assembles a command code from the module and command
// ID bits of cmdID and the type bits of cmdType. Pure, no I/O.
func ComposeCommand(cmdID, cmdType uint16) uint16 {
	return (cmdID & ModuleIDMask) |
		(cmdID & CommandIDMask) |
		(cmdType & CommandTypeMask)
}
