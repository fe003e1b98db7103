//go:build unix

package config

import (
	"os"

	"golang.org/x/sys/unix"
)

// lockShared acquires a shared lock on the file (Unix implementation)
func lockShared(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_SH)
}

// lockExclusive acquires an exclusive lock on the file (Unix implementation)
func lockExclusive(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_EX)
}

// unlockFile releases the lock on the file (Unix implementation)
func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
