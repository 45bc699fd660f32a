// Package console is the single output path for everything the user sees:
// the prompt, asynchronous job notices, and diagnostics. Notices can fire
// from the reaper while the main loop is writing, so every message is
// assembled in a private buffer and emitted with one Write under one lock.
package console

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

const prompt = ": "

var promptColor = color.New(color.FgGreen, color.Bold)

type Console struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
	buf []byte
}

func New(out, err io.Writer) *Console {
	return &Console{out: out, err: err}
}

// Prompt writes the prompt glyph with no trailing newline. Color is applied
// only when the process is attached to a terminal.
func (c *Console) Prompt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	io.WriteString(c.out, promptColor.Sprint(prompt))
}

// Interrupted redraws the prompt on its own line after an interrupt arrives
// while no command is running.
func (c *Console) Interrupted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	io.WriteString(c.out, "\n"+promptColor.Sprint(prompt))
}

func (c *Console) BackgroundStarted(pid int) {
	c.notice("background pid is ", pid)
}

func (c *Console) BackgroundExited(pid, code int) {
	c.jobDone(pid, " is done: exit value ", code)
}

func (c *Console) BackgroundSignaled(pid, sig int) {
	c.jobDone(pid, " is done: terminated by signal ", sig)
}

func (c *Console) ExitValue(code int) {
	c.notice("exit value ", code)
}

func (c *Console) TerminatedBy(sig int) {
	c.notice("terminated by signal ", sig)
}

func (c *Console) EnteringForegroundOnly() {
	c.Line("Entering foreground-only mode (& is now ignored)")
}

func (c *Console) ExitingForegroundOnly() {
	c.Line("Exiting foreground-only mode")
}

// Line writes s and a newline to standard output.
func (c *Console) Line(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf[:0], s...)
	c.buf = append(c.buf, '\n')
	c.out.Write(c.buf)
}

// Errorf writes a one-line diagnostic to standard error.
func (c *Console) Errorf(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf[:0], fmt.Sprintf(format, args...)...)
	c.buf = append(c.buf, '\n')
	c.err.Write(c.buf)
}

func (c *Console) notice(head string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf[:0], head...)
	c.buf = strconv.AppendInt(c.buf, int64(n), 10)
	c.buf = append(c.buf, '\n')
	c.out.Write(c.buf)
}

func (c *Console) jobDone(pid int, verdict string, n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf = append(c.buf[:0], "background pid "...)
	c.buf = strconv.AppendInt(c.buf, int64(pid), 10)
	c.buf = append(c.buf, verdict...)
	c.buf = strconv.AppendInt(c.buf, int64(n), 10)
	c.buf = append(c.buf, '\n')
	c.out.Write(c.buf)
}
