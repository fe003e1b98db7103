//go:build windows

package config

import (
	"os"

	"golang.org/x/sys/windows"
)

// lockShared acquires a shared lock on the file (Windows implementation)
func lockShared(file *os.File) error {
	return lockFileEx(file, 0)
}

// lockExclusive acquires an exclusive lock on the file (Windows implementation)
func lockExclusive(file *os.File) error {
	return lockFileEx(file, windows.LOCKFILE_EXCLUSIVE_LOCK)
}

// unlockFile releases the lock on the file (Windows implementation)
func unlockFile(file *os.File) error {
	var overlapped windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(file.Fd()), 0, 1, 0, &overlapped)
}

func lockFileEx(file *os.File, flags uint32) error {
	var overlapped windows.Overlapped
	return windows.LockFileEx(windows.Handle(file.Fd()), flags, 0, 1, 0, &overlapped)
}
