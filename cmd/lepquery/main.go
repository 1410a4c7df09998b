// lepquery queries the camera's internal state over its control
// interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/conn/physic"
	"periph.io/x/periph/host"

	"github.com/thermalview/lepton.go/pkg/bus/i2cdev"
	"github.com/thermalview/lepton.go/pkg/cci"
	"github.com/thermalview/lepton.go/pkg/clock"
)

func mainImpl() error {
	i2cName := flag.String("i2c", "", "I²C bus to use")
	i2cHz := flag.Int("hz", 0, "I²C bus speed")
	ffc := flag.Bool("ffc", false, "trigger FFC")
	flag.Parse()

	if len(flag.Args()) != 0 {
		return fmt.Errorf("unexpected argument: %s", flag.Args())
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	conn, err := i2creg.Open(*i2cName)
	if err != nil {
		return err
	}
	defer conn.Close()
	if *i2cHz != 0 {
		if err := conn.SetSpeed(physic.Frequency(*i2cHz) * physic.Hertz); err != nil {
			return err
		}
	}

	clk := &clock.Clock{}
	go (&clock.Ticker{Clock: clk}).Run(context.Background())

	dev := cci.New(i2cdev.New(conn), clk)
	status, err := dev.GetStatus()
	if err != nil {
		return err
	}
	fmt.Printf("Status.CameraStatus: %#08x\n", status.CameraStatus)
	fmt.Printf("Status.CommandCount: %d\n", status.CommandCount)
	serial, err := dev.GetSerial()
	if err != nil {
		return err
	}
	fmt.Printf("Serial:              %016X\n", serial)
	uptime, err := dev.GetUptime()
	if err != nil {
		return err
	}
	fmt.Printf("Uptime:              %s\n", uptime)
	temp, err := dev.GetFPATemp()
	if err != nil {
		return err
	}
	fmt.Printf("Temp FPA:            %.2f C\n", temp)
	temp, err = dev.GetAuxTemp()
	if err != nil {
		return err
	}
	fmt.Printf("Temp aux:            %.2f C\n", temp)
	fmt.Printf("Last error:          %s\n", dev.LastError())
	if *ffc {
		return dev.RunFFC()
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "\nlepquery: %s.\n", err)
		os.Exit(1)
	}
}
