//go:build unix

package adapters

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"

	"xsysroot/internal/types"
)

func lockFile(f *os.File, mode types.LockMode, block bool) error {
	how := unix.LOCK_SH
	if mode == types.LockExclusive {
		how = unix.LOCK_EX
	}
	if !block {
		how |= unix.LOCK_NB
	}
	for {
		err := unix.Flock(int(f.Fd()), how)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return err
	}
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

func isWouldBlock(err error) bool {
	return errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EAGAIN)
}
