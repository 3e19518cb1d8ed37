package sim

import (
	"fmt"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/uartsim/pkg/cli/sh"
)

// Step advances CYCLES (default 1).
func Step(sess *sh.Session, args []string) (interface{}, error) {
	n, err := sh.ParseCycles(args, 1)
	if err != nil {
		return nil, err
	}
	return sess.Step(n)
}

// Run advances CYCLES, one bit period by default.
func Run(sess *sh.Session, args []string) (interface{}, error) {
	n, err := sh.ParseCycles(args, sess.Top.Divisor())
	if err != nil {
		return nil, err
	}
	return sess.Step(n)
}

// Done runs until the whole message has been observed.
func Done(sess *sh.Session, args []string) (interface{}, error) {
	if len(args) > 0 {
		return nil, fmt.Errorf("no arguments expected")
	}
	return sess.RunUntilDone()
}

// Reset restarts from power-on.
func Reset(sess *sh.Session, args []string) (interface{}, error) {
	return sess.Reset(), nil
}

var (
	// StepCmd advances a number of cycles.
	StepCmd = ishell.Cmd{
		Name:    "step",
		Aliases: []string{"s"},
		Help:    "[CYCLES]",
		Func:    sh.OnSession(Step),
	}

	// RunCmd advances a number of cycles, a bit period by default.
	RunCmd = ishell.Cmd{
		Name:    "run",
		Aliases: []string{"r"},
		Help:    "[CYCLES]",
		Func:    sh.OnSession(Run),
	}

	// DoneCmd runs until the message has been sent and decoded.
	DoneCmd = ishell.Cmd{
		Name:    "done",
		Aliases: []string{"d"},
		Help:    "",
		Func:    sh.OnSession(Done),
	}

	// ResetCmd resets the design.
	ResetCmd = ishell.Cmd{
		Name: "reset",
		Help: "",
		Func: sh.OnSession(Reset),
	}
)

func init() {
	sh.AddCmds(
		&StepCmd,
		&RunCmd,
		&DoneCmd,
		&ResetCmd,
	)
}
