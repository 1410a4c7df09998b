package sh

import (
	"encoding/json"
	"flag"
	"log"

	"github.com/abiosoft/ishell"

	"github.com/thermalview/lepton.go/pkg/cci"
	"github.com/thermalview/lepton.go/pkg/infer"
)

// Shell provides the ishell backed front end, bound to one camera.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell    *ishell.Shell
	Device   *cci.Device
	Pipeline *infer.Pipeline
	Blinker  Blinker
}

// Blinker toggles the board LED.
type Blinker interface {
	Blink(times int) error
}

const (
	shellKey = "$shell"
	prompt   = "cam > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands []*ishell.Cmd
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by command providers during their init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a shell bound to the camera device.
func New(dev *cci.Device) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Device: dev,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(prompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// WithPipeline attaches the inference pipeline.
func (s *Shell) WithPipeline(p *infer.Pipeline) *Shell {
	s.Pipeline = p
	return s
}

// WithBlinker attaches the LED blinker.
func (s *Shell) WithBlinker(b Blinker) *Shell {
	s.Blinker = b
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// DeviceFrom gets the camera device from ishell context.
func DeviceFrom(c *ishell.Context) *cci.Device {
	return ShellFrom(c).Device
}

// Print renders a command result honoring the -json flag.
func Print(c *ishell.Context, v interface{}) {
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(v)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(string(out))
		return
	}
	c.Printf("%+v\n", v)
}

// OK reports command success.
func OK(c *ishell.Context) {
	if ShellFrom(c).OutputJSON {
		c.Println(`{"ok":true}`)
		return
	}
	c.Println("OK")
}

// Run runs the shell: arguments are processed as a single command,
// otherwise an interactive session starts.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}
