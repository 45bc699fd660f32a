// Package execute spawns external commands: program lookup, redirection
// binding, the fork/exec itself, and the hand-off of every child to the job
// manager.
package execute

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"tinysh/internal/console"
	"tinysh/internal/jobs"
	"tinysh/internal/parser"
)

// Launcher runs commands that are not built-ins.
type Launcher struct {
	console *console.Console
	jobs    *jobs.Manager
}

func NewLauncher(c *console.Console, m *jobs.Manager) *Launcher {
	return &Launcher{console: c, jobs: m}
}

// Run executes cmd as a child process. Recoverable problems (unknown
// program, unopenable redirect target, exec failure) are reported to the
// user and, for a foreground command, recorded as exit status 1; a
// background command that never spawned leaves the foreground record
// alone. The returned error is reserved for fork-level resource
// exhaustion, which ends the session.
//
// A foreground child stays in the shell's process group, so terminal
// interrupt and stop reach it directly with the default dispositions exec
// restores. A background child gets its own group and never sees them.
func (l *Launcher) Run(cmd *parser.Command) error {
	r, err := openRedirects(cmd)
	if err != nil {
		l.console.Errorf("%v", err)
		l.recordFailure(cmd)
		return nil
	}
	defer r.Close()

	// Redirect targets are opened before the program is resolved, so a line
	// like "nosuch > capture" still creates and truncates its output file.
	path, err := exec.LookPath(cmd.Argv[0])
	if err != nil {
		l.reportExecError(cmd, err)
		return nil
	}

	attr := &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: r.stdio(),
		Sys:   &syscall.SysProcAttr{Setpgid: cmd.Background},
	}
	_, err = l.jobs.Spawn(cmd.Background, func() (int, error) {
		return syscall.ForkExec(path, cmd.Argv, attr)
	})
	if err != nil {
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.ENOMEM) {
			return fmt.Errorf("fork: %w", err)
		}
		l.reportExecError(cmd, err)
		return nil
	}

	if !cmd.Background {
		l.jobs.WaitForeground()
	}
	return nil
}

// reportExecError prints the program name with the system error text and
// records the failure.
func (l *Launcher) reportExecError(cmd *parser.Command, err error) {
	var ee *exec.Error
	if errors.As(err, &ee) {
		err = ee.Err
	}
	l.console.Errorf("%s: %v", cmd.Argv[0], err)
	l.recordFailure(cmd)
}

// recordFailure marks a command that never spawned as having exited 1.
// The record holds foreground results only; a failed background command
// never had a pid to report on.
func (l *Launcher) recordFailure(cmd *parser.Command) {
	if !cmd.Background {
		l.jobs.SetExitCode(1)
	}
}
