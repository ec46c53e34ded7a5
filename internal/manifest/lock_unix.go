//go:build !windows

package manifest

import (
	"os"
	"syscall"
)

// isProcessAlive probes pid with signal 0, which checks existence and
// permissions without actually signaling the process.
func isProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}
