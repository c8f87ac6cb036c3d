package pipeline

import (
	"os"
	"syscall"
)

// signaled reports whether the process was terminated by a signal
// instead of exiting on its own.
func signaled(state *os.ProcessState) bool {
	ws, ok := state.Sys().(syscall.WaitStatus)
	return ok && ws.Signaled()
}
