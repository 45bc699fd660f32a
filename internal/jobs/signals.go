package jobs

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// StartInteractive arms the handler for the two terminal-generated signals.
// SIGTSTP toggles foreground-only mode; SIGINT redraws the prompt when no
// foreground child holds the terminal. Catching them (rather than ignoring)
// matters: exec resets caught dispositions to the default in the child, so
// foreground children still die to ^C and stop on ^Z. Calling it again is a
// no-op.
func (m *Manager) StartInteractive() {
	m.intrOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, unix.SIGINT, unix.SIGTSTP)
		go func() {
			for sig := range ch {
				switch sig {
				case unix.SIGTSTP:
					m.toggleForegroundOnly()
				case unix.SIGINT:
					m.interrupted()
				}
			}
		}()
	})
}

// toggleForegroundOnly flips the mode at once, then holds the notice back
// until no foreground child is outstanding. The terminal stopped any
// foreground child together with the shell, so it is resumed here before
// the park.
func (m *Manager) toggleForegroundOnly() {
	m.mu.Lock()
	entering := !m.fgOnly
	m.fgOnly = entering

	if m.fgPid != 0 {
		_ = m.kill(m.fgPid, unix.SIGCONT)
	}
	for m.fgPid != 0 {
		m.cond.Wait()
	}
	m.mu.Unlock()

	if entering {
		m.console.EnteringForegroundOnly()
	} else {
		m.console.ExitingForegroundOnly()
	}
}

// interrupted redraws the prompt after a terminal interrupt. A foreground
// child shares the shell's process group, so the signal already reached it
// and the reaper will report the death; nothing to do in that case.
func (m *Manager) interrupted() {
	m.mu.Lock()
	busy := m.fgPid != 0
	m.mu.Unlock()

	if !busy {
		m.console.Interrupted()
	}
}
