//go:build unix

package filekv

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockFile takes an exclusive lock for writers and a shared one for readers
func lockFile(file *os.File, exclusive bool) error {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}
	return unix.Flock(int(file.Fd()), how)
}

func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
