//go:build !unix && !windows

package config

import "os"

func lockShared(file *os.File) error { return nil }

func lockExclusive(file *os.File) error { return nil }

func unlockFile(file *os.File) error { return nil }
