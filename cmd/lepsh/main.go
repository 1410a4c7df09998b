package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"

	"github.com/thermalview/lepton.go/pkg/bus/i2cdev"
	"github.com/thermalview/lepton.go/pkg/cci"
	"github.com/thermalview/lepton.go/pkg/cli/sh"
	"github.com/thermalview/lepton.go/pkg/clock"
	"github.com/thermalview/lepton.go/pkg/infer"
	"github.com/thermalview/lepton.go/pkg/sim"

	_ "github.com/thermalview/lepton.go/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

var (
	simulated = flag.Bool("sim", false, "Use the simulated camera.")
	i2cName   = flag.String("i2c", "", "I²C bus the camera is attached to.")
)

// consoleBlinker stands in for the board LED.
type consoleBlinker struct {
	clk clock.Source
}

func (b consoleBlinker) Blink(times int) error {
	for i := 0; i < times; i++ {
		fmt.Println("LED on")
		b.clk.SleepMillis(100)
		fmt.Println("LED off")
		b.clk.SleepMillis(100)
	}
	return nil
}

func main() {
	flag.Parse()

	var (
		clk     clock.Source
		wordBus cci.WordBus
	)
	if *simulated {
		clk = &clock.Simulated{}
		wordBus = sim.NewDefaultCamera()
	} else {
		c := &clock.Clock{}
		go (&clock.Ticker{Clock: c}).Run(context.Background())
		clk = c

		if _, err := host.Init(); err != nil {
			log.Fatalln(err)
		}
		conn, err := i2creg.Open(*i2cName)
		if err != nil {
			log.Fatalln(err)
		}
		defer conn.Close()
		wordBus = i2cdev.New(conn)
	}

	dev := cci.New(wordBus, clk)
	shell := sh.New(dev).
		WithPipeline(&infer.Pipeline{Executor: &sim.Executor{Classes: 4}, Clock: clk}).
		WithBlinker(consoleBlinker{clk: clk})
	shell.Run(flag.Args()...)
}
