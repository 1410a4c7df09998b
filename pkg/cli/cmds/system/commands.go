package system

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/thermalview/lepton.go/pkg/cli/sh"
)

const defaultInputBytes = 4096

var (
	// BlinkCmd blinks the board LED.
	BlinkCmd = ishell.Cmd{
		Name: "blink",
		Help: "[TIMES]",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			if s.Blinker == nil {
				c.Err(fmt.Errorf("no LED available"))
				return
			}
			times := 3
			if len(c.Args) > 0 {
				n, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				times = n
			}
			if err := s.Blinker.Blink(times); err != nil {
				c.Err(err)
				return
			}
			sh.OK(c)
		},
	}

	// InferCmd runs one inference pass on a zeroed input buffer.
	InferCmd = ishell.Cmd{
		Name:    "infer",
		Aliases: []string{"ml"},
		Help:    "[INPUT_BYTES]",
		Func: func(c *ishell.Context) {
			s := sh.ShellFrom(c)
			if s.Pipeline == nil {
				c.Err(fmt.Errorf("no model loaded"))
				return
			}
			size := defaultInputBytes
			if len(c.Args) > 0 {
				n, err := strconv.Atoi(c.Args[0])
				if err != nil {
					c.Err(err)
					return
				}
				size = n
			}
			res, err := s.Pipeline.Run("input", make([]int8, size))
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, res.String())
		},
	}
)

func init() {
	sh.AddCmds(
		&BlinkCmd,
		&InferCmd,
	)
}
