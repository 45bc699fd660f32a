// Package shell drives one interactive session: prompt, read, parse,
// dispatch to a built-in or the launcher, repeat until exit.
package shell

import (
	"bufio"
	"io"
	"os"

	"tinysh/internal/builtins"
	"tinysh/internal/console"
	"tinysh/internal/execute"
	"tinysh/internal/jobs"
	"tinysh/internal/parser"
)

type Shell struct {
	console  *console.Console
	jobs     *jobs.Manager
	launcher *execute.Launcher
	env      *builtins.Env
	pid      int
	in       *bufio.Scanner
}

// New builds a session that reads lines from in and writes through c.
func New(in io.Reader, c *console.Console) *Shell {
	m := jobs.NewManager(c)
	return &Shell{
		console:  c,
		jobs:     m,
		launcher: execute.NewLauncher(c, m),
		env:      &builtins.Env{Jobs: m, Console: c},
		pid:      os.Getpid(),
		in:       bufio.NewScanner(in),
	}
}

// Jobs exposes the session's job manager; the startup flags use it.
func (s *Shell) Jobs() *jobs.Manager { return s.jobs }

// Run drives the session until the exit built-in or end of input. The
// returned error is fatal (fork-level resource exhaustion); everything else
// is reported to the user and the loop keeps going.
func (s *Shell) Run() error {
	s.jobs.StartInteractive()

	for !s.jobs.ExitRequested() {
		s.console.Prompt()
		if !s.in.Scan() {
			// End of input, or a failed read, behaves like the exit
			// built-in; a failure is reported first.
			if err := s.in.Err(); err != nil {
				s.console.Errorf("read: %v", err)
			}
			s.console.Line("exit")
			return s.Dispatch("exit")
		}
		if err := s.Dispatch(s.in.Text()); err != nil {
			return err
		}
	}
	return nil
}

// RunLine executes a single line and then the exit path; the -c flag uses
// it.
func (s *Shell) RunLine(line string) error {
	s.jobs.StartInteractive()

	if err := s.Dispatch(line); err != nil {
		return err
	}
	return s.Dispatch("exit")
}

// Dispatch parses and executes one line. Parse problems are reported to the
// user and leave the recorded status alone.
func (s *Shell) Dispatch(line string) error {
	cmd, err := parser.Parse(line, s.pid, s.jobs.ForegroundOnly())
	if err != nil {
		s.console.Errorf("%v", err)
		return nil
	}
	if cmd == nil {
		return nil
	}

	if fn, ok := builtins.Lookup(cmd.Argv[0]); ok {
		fn(s.env, cmd.Argv)
		return nil
	}
	return s.launcher.Run(cmd)
}
