//go:build windows

package filekv

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockFile takes an exclusive lock for writers and a shared one for readers
func lockFile(file *os.File, exclusive bool) error {
	var flags uint32
	if exclusive {
		flags = windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(file.Fd()), flags, 0, 1, 0, ol)
}

func unlockFile(file *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(file.Fd()), 0, 1, 0, ol)
}
