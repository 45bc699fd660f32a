package jobs

import (
	"errors"

	"golang.org/x/sys/unix"
)

// watch blocks until pid terminates and then classifies the completion. One
// watcher runs per spawned child, so no other wait can consume this child's
// status. A stopped child keeps the watcher blocked until it is continued
// and exits.
func (m *Manager) watch(pid int) {
	var ws unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &ws, 0, nil)
		if err == nil {
			break
		}
		if !errors.Is(err, unix.EINTR) {
			return
		}
	}
	m.finish(pid, ws)
}

// finish classifies one reaped pid and updates state to match. A registry
// hit was a background job; the outstanding foreground pid ends the
// foreground wait; any other pid belongs to no tracked child and is
// dropped.
func (m *Manager) finish(pid int, ws unix.WaitStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.removeLocked(pid):
		if ws.Signaled() {
			m.console.BackgroundSignaled(pid, int(ws.Signal()))
		} else {
			m.console.BackgroundExited(pid, ws.ExitStatus())
		}
	case pid == m.fgPid && pid != 0:
		if ws.Signaled() {
			m.recordSignalLocked(int(ws.Signal()))
			m.console.TerminatedBy(int(ws.Signal()))
		} else {
			m.recordExitLocked(ws.ExitStatus())
		}
		m.fgPid = 0
		m.cond.Broadcast()
	}
}
