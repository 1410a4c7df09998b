package camera

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/thermalview/lepton.go/pkg/cci"
	"github.com/thermalview/lepton.go/pkg/cli/sh"
)

var (
	// StatusCmd reads the SYS camera status.
	StatusCmd = ishell.Cmd{
		Name:    "cam.status",
		Aliases: []string{"cs"},
		Help:    "",
		Func: func(c *ishell.Context) {
			status, err := sh.DeviceFrom(c).GetStatus()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, status)
		},
	}

	// SerialCmd reads the camera serial number.
	SerialCmd = ishell.Cmd{
		Name: "cam.serial",
		Help: "",
		Func: func(c *ishell.Context) {
			serial, err := sh.DeviceFrom(c).GetSerial()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, fmt.Sprintf("%016X", serial))
		},
	}

	// UptimeCmd reads the camera uptime.
	UptimeCmd = ishell.Cmd{
		Name: "cam.uptime",
		Help: "",
		Func: func(c *ishell.Context) {
			uptime, err := sh.DeviceFrom(c).GetUptime()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, uptime.String())
		},
	}

	// TempCmd reads the focal plane array temperature.
	TempCmd = ishell.Cmd{
		Name: "cam.temp",
		Help: "",
		Func: func(c *ishell.Context) {
			temp, err := sh.DeviceFrom(c).GetFPATemp()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, fmt.Sprintf("%.2f C", temp))
		},
	}

	// FFCCmd triggers a flat field correction cycle.
	FFCCmd = ishell.Cmd{
		Name: "cam.ffc",
		Help: "",
		Func: func(c *ishell.Context) {
			if err := sh.DeviceFrom(c).RunFFC(); err != nil {
				c.Err(err)
				return
			}
			sh.OK(c)
		},
	}

	// AGCCmd reads or sets automatic gain correction.
	AGCCmd = ishell.Cmd{
		Name: "cam.agc",
		Help: "[on|off]",
		Func: func(c *ishell.Context) {
			dev := sh.DeviceFrom(c)
			if len(c.Args) == 0 {
				enabled, err := dev.GetAGC()
				if err != nil {
					c.Err(err)
					return
				}
				sh.Print(c, enabled)
				return
			}
			if err := dev.SetAGC(c.Args[0] == "on"); err != nil {
				c.Err(err)
				return
			}
			sh.OK(c)
		},
	}

	// PolarityCmd reads or sets the video polarity.
	PolarityCmd = ishell.Cmd{
		Name: "cam.polarity",
		Help: "[white|black]",
		Func: func(c *ishell.Context) {
			dev := sh.DeviceFrom(c)
			if len(c.Args) == 0 {
				p, err := dev.GetPolarity()
				if err != nil {
					c.Err(err)
					return
				}
				if p == cci.BlackHot {
					sh.Print(c, "black")
				} else {
					sh.Print(c, "white")
				}
				return
			}
			p := cci.WhiteHot
			if c.Args[0] == "black" {
				p = cci.BlackHot
			}
			if err := dev.SetPolarity(p); err != nil {
				c.Err(err)
				return
			}
			sh.OK(c)
		},
	}

	// ErrCmd shows the last error code latched from the camera.
	ErrCmd = ishell.Cmd{
		Name: "cam.err",
		Help: "",
		Func: func(c *ishell.Context) {
			sh.Print(c, sh.DeviceFrom(c).LastError().String())
		},
	}

	// ReadRegCmd reads a raw camera register.
	ReadRegCmd = ishell.Cmd{
		Name:    "cam.rreg",
		Aliases: []string{"rreg"},
		Help:    "REGISTER",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 1 {
				c.Err(fmt.Errorf("register address expected"))
				return
			}
			reg, err := strconv.ParseUint(c.Args[0], 0, 16)
			if err != nil {
				c.Err(err)
				return
			}
			v, err := sh.DeviceFrom(c).ReadRegister(uint16(reg))
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, fmt.Sprintf("%#04x", v))
		},
	}

	// WriteRegCmd writes a raw camera register.
	WriteRegCmd = ishell.Cmd{
		Name:    "cam.wreg",
		Aliases: []string{"wreg"},
		Help:    "REGISTER VALUE",
		Func: func(c *ishell.Context) {
			if len(c.Args) != 2 {
				c.Err(fmt.Errorf("register address and value expected"))
				return
			}
			reg, err := strconv.ParseUint(c.Args[0], 0, 16)
			if err != nil {
				c.Err(err)
				return
			}
			v, err := strconv.ParseUint(c.Args[1], 0, 16)
			if err != nil {
				c.Err(err)
				return
			}
			if err := sh.DeviceFrom(c).WriteRegister(uint16(reg), uint16(v)); err != nil {
				c.Err(err)
				return
			}
			sh.OK(c)
		},
	}
)

func init() {
	sh.AddCmds(
		&StatusCmd,
		&SerialCmd,
		&UptimeCmd,
		&TempCmd,
		&FFCCmd,
		&AGCCmd,
		&PolarityCmd,
		&ErrCmd,
		&ReadRegCmd,
		&WriteRegCmd,
	)
}
