//go:build windows

package manifest

import "os"

// isProcessAlive on Windows treats any process we can open as alive; there
// is no portable signal-0 probe.
func isProcessAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	_, err := os.FindProcess(pid)
	return err == nil
}
