// Package sh provides an interactive shell over a local simulation.
package sh

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/uartsim/pkg/sim"
	"github.com/robotalks/uartsim/pkg/top"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool

	Shell   *ishell.Shell
	Session *Session
}

const shellKey = "$shell"

var (
	// flags

	evalOnly   bool
	outputJSON bool

	commands []*ishell.Cmd
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// Commands lists the registered commands.
func Commands() []*ishell.Cmd {
	return commands
}

// New creates a new shell.
func New(sess *Session) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:   ishell.New(),
		Session: sess,
	}
	s.Shell.Set(shellKey, s)
	s.updatePrompt()
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

func (s *Shell) updatePrompt() {
	s.Shell.SetPrompt(fmt.Sprintf("[%d] > ", s.Session.Sim.Cycle()))
}

// Format renders a command result as text or JSON.
func Format(v interface{}, asJSON bool) (string, error) {
	if asJSON {
		out, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
	if str, ok := v.(fmt.Stringer); ok {
		return str.String(), nil
	}
	return fmt.Sprint(v), nil
}

// SessionFunc is the body of a command working on the session.
type SessionFunc func(sess *Session, args []string) (interface{}, error)

// OnSession wraps fn as a command func printing its result.
func OnSession(fn SessionFunc) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		s := ShellFrom(c)
		defer s.updatePrompt()
		res, err := fn(s.Session, c.Args)
		if err != nil {
			c.Err(err)
			return
		}
		if res == nil {
			return
		}
		out, err := Format(res, s.OutputJSON)
		if err != nil {
			c.Err(err)
			return
		}
		c.Println(out)
	}
}

// ParseCycles parses an optional cycle count argument.
func ParseCycles(args []string, def uint64) (uint64, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.ParseUint(args[0], 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid CYCLES: %v", err)
	}
	return n, nil
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Printf("%s: sending %q, %d cycles per bit\n",
			s.Session.Top.Platform.Name, s.Session.Top.Message(), s.Session.Top.Divisor())
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	sess, err := NewSession(top.NewConfig(), sim.NewConfig())
	if err != nil {
		log.Fatalln(err)
	}
	New(sess).Run(flag.Args()...)
}
