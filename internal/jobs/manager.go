// Package jobs owns the shell-wide job state: the background pid registry,
// the last foreground verdict, and the per-child reaping and stop/interrupt
// handling that mutate them behind the read loop's back.
package jobs

import (
	"sync"

	"golang.org/x/sys/unix"

	"tinysh/internal/console"
)

// Manager is the single owner of job-control state, shared by the read
// loop, the launcher, the built-ins, the watcher goroutines, and the signal
// handler. mu guards every field below it; cond carries "the foreground
// child is gone" to whoever is parked on it.
type Manager struct {
	console *console.Console
	kill    func(pid int, sig unix.Signal) error

	intrOnce sync.Once

	mu   sync.Mutex
	cond *sync.Cond

	background map[int]struct{}
	fgPid      int // 0 means no foreground child outstanding

	lastExitCode   int
	lastTermSignal int // non-zero only when the last foreground child died by signal

	fgOnly      bool
	exitPending bool
}

// NewManager returns a Manager with an empty registry and a last status
// that reads as exit value 0.
func NewManager(c *console.Console) *Manager {
	m := &Manager{
		console:    c,
		kill:       unix.Kill,
		background: make(map[int]struct{}),
	}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Spawn invokes start, records the resulting pid as a background job or as
// the foreground child, and hands it to a watcher goroutine that collects
// its termination. Registration and the start notice happen under the lock
// the watcher needs to classify the completion, so a start notice always
// precedes the matching done notice.
func (m *Manager) Spawn(background bool, start func() (int, error)) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	pid, err := start()
	if err != nil {
		return 0, err
	}

	if background {
		m.background[pid] = struct{}{}
		m.console.BackgroundStarted(pid)
	} else {
		m.fgPid = pid
	}
	go m.watch(pid)
	return pid, nil
}

// WaitForeground blocks until no foreground child is outstanding. The wait
// re-checks on every wakeup.
func (m *Manager) WaitForeground() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for m.fgPid != 0 {
		m.cond.Wait()
	}
}

// Add registers pid as a live background job.
func (m *Manager) Add(pid int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.background[pid] = struct{}{}
}

// Remove drops pid from the registry and reports whether it was present.
// True identifies a completed pid as a background job.
func (m *Manager) Remove(pid int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(pid)
}

func (m *Manager) removeLocked(pid int) bool {
	_, ok := m.background[pid]
	if ok {
		delete(m.background, pid)
	}
	return ok
}

// Pids returns a snapshot of the live background jobs.
func (m *Manager) Pids() []int {
	m.mu.Lock()
	defer m.mu.Unlock()

	pids := make([]int, 0, len(m.background))
	for pid := range m.background {
		pids = append(pids, pid)
	}
	return pids
}

// SetExitCode records a normal foreground exit and clears any recorded
// signal. Exactly one of code and signal is meaningful at any time.
func (m *Manager) SetExitCode(code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordExitLocked(code)
}

// SetTermSignal records a foreground signal death and clears any recorded
// exit code.
func (m *Manager) SetTermSignal(sig int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recordSignalLocked(sig)
}

func (m *Manager) recordExitLocked(code int) {
	m.lastExitCode = code
	m.lastTermSignal = 0
}

func (m *Manager) recordSignalLocked(sig int) {
	m.lastTermSignal = sig
	m.lastExitCode = 0
}

// LastStatus reports the most recent foreground outcome. A non-zero signal
// means the command was killed by that signal; otherwise code holds its
// exit value.
func (m *Manager) LastStatus() (code, signal int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastExitCode, m.lastTermSignal
}

// ForegroundOnly reports whether the background marker is currently ignored.
func (m *Manager) ForegroundOnly() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fgOnly
}

// SetForegroundOnly forces the mode; the startup flag uses it.
func (m *Manager) SetForegroundOnly(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fgOnly = on
}

// RequestExit marks the session as ending; the read loop stops once the
// current dispatch returns.
func (m *Manager) RequestExit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exitPending = true
}

// ExitRequested reports whether the exit built-in has run.
func (m *Manager) ExitRequested() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exitPending
}

// TerminateBackground sends SIGTERM to every live background job. The exit
// path calls it so no child outlives the session unattended.
func (m *Manager) TerminateBackground() {
	for _, pid := range m.Pids() {
		_ = m.kill(pid, unix.SIGTERM)
	}
}
