//go:build !linux && !windows

package editor

import "os/exec"

func findPlatformEditor(path string) (string, []string) {
	if _, err := exec.LookPath("vi"); err == nil {
		return "vi", []string{path}
	}
	// macOS TextEdit, blocking until the document is closed
	return "open", []string{"-W", "-t", path}
}
