//go:build windows

package adapters

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"

	"xsysroot/internal/types"
)

const allBytes = ^uint32(0)

func lockFile(f *os.File, mode types.LockMode, block bool) error {
	var flags uint32
	if mode == types.LockExclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	if !block {
		flags |= windows.LOCKFILE_FAIL_IMMEDIATELY
	}
	ol := new(windows.Overlapped)
	return windows.LockFileEx(windows.Handle(f.Fd()), flags, 0, allBytes, allBytes, ol)
}

func unlockFile(f *os.File) error {
	ol := new(windows.Overlapped)
	return windows.UnlockFileEx(windows.Handle(f.Fd()), 0, allBytes, allBytes, ol)
}

func isWouldBlock(err error) bool {
	return errors.Is(err, windows.ERROR_LOCK_VIOLATION)
}
