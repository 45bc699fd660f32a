// Package builtins implements the commands the shell runs in-process:
// status, cd, and exit. Built-ins act on session state directly and never
// touch the last-status record.
package builtins

import (
	"os"

	"tinysh/internal/console"
	"tinysh/internal/jobs"
)

// Env is what a built-in may touch: the session's job state and the
// console.
type Env struct {
	Jobs    *jobs.Manager
	Console *console.Console
}

// Func executes one built-in with its full argument vector; argv[0] is the
// name it was looked up under.
type Func func(env *Env, argv []string)

var table = map[string]Func{
	"status": statusCmd,
	"cd":     cdCmd,
	"exit":   exitCmd,
}

// Lookup returns the built-in registered under name.
func Lookup(name string) (Func, bool) {
	fn, ok := table[name]
	return fn, ok
}

// statusCmd reports the outcome of the last foreground command. Built-ins
// and background jobs never show up here.
func statusCmd(env *Env, argv []string) {
	code, sig := env.Jobs.LastStatus()
	if sig != 0 {
		env.Console.TerminatedBy(sig)
		return
	}
	env.Console.ExitValue(code)
}

// cdCmd changes the working directory, to $HOME when no argument is given.
// Arguments past the first are ignored. A failure is reported and leaves
// the directory as it was.
func cdCmd(env *Env, argv []string) {
	dir := os.Getenv("HOME")
	if len(argv) > 1 {
		dir = argv[1]
	}
	if err := os.Chdir(dir); err != nil {
		env.Console.Errorf("cd: %v", err)
	}
}

// exitCmd ends the session: outstanding background jobs get SIGTERM and the
// read loop stops once this dispatch returns.
func exitCmd(env *Env, argv []string) {
	env.Jobs.TerminateBackground()
	env.Jobs.RequestExit()
}
