package cci

// DeviceAddress is the camera's 7-bit bus address.
const DeviceAddress uint8 = 0x2A

// Control interface registers. The 16 direct data slots follow
// RegData0 at 2-byte steps; payloads beyond 16 words go through the
// block buffer window instead.
const (
	RegPower      uint16 = 0x0000
	RegStatus     uint16 = 0x0002
	RegCommand    uint16 = 0x0004
	RegDataLength uint16 = 0x0006
	RegData0      uint16 = 0x0008
	RegDataBuffer uint16 = 0xF800
)

// DirectDataWords is the capacity of the direct data slots, in words.
const DirectDataWords = 16

// Status register layout.
const (
	StatusBusyBit    uint16 = 0x0001
	StatusErrorMask  uint16 = 0xFF00
	StatusErrorShift        = 8
)

// Command code field layout.
const (
	ModuleIDMask    uint16 = 0x0F00
	CommandIDMask   uint16 = 0x00FC
	CommandTypeMask uint16 = 0x0003
)

// Command types.
const (
	Get uint16 = 0x0000
	Set uint16 = 0x0001
	Run uint16 = 0x0002
)

// Module bases.
const (
	AGCModule uint16 = 0x0100
	SYSModule uint16 = 0x0200
	VIDModule uint16 = 0x0300
	OEMModule uint16 = 0x0800
)

// Command IDs.
const (
	AGCEnable   uint16 = AGCModule | 0x0000
	SYSStatus   uint16 = SYSModule | 0x0004
	SYSSerial   uint16 = SYSModule | 0x0008
	SYSUptime   uint16 = SYSModule | 0x000C
	SYSAuxTemp  uint16 = SYSModule | 0x0010
	SYSFPATemp  uint16 = SYSModule | 0x0014
	SYSFFCNorm  uint16 = SYSModule | 0x0040
	VIDPolarity uint16 = VIDModule | 0x0004
)
