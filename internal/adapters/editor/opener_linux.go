//go:build linux

package editor

import "os/exec"

var defaultEditors = []string{
	"nano",
	"vim",
	"vi",
	"code",
}

func findPlatformEditor(path string) (string, []string) {
	for _, editor := range defaultEditors {
		if _, err := exec.LookPath(editor); err == nil {
			if editor == "code" {
				return editor, []string{"--wait", path}
			}
			return editor, []string{path}
		}
	}
	return "", nil
}
