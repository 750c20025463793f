//go:build !unix && !windows

package adapters

import (
	"errors"
	"os"

	"xsysroot/internal/types"
)

var errLockUnsupported = errors.New("advisory file locks are not supported on this platform")

func lockFile(_ *os.File, _ types.LockMode, _ bool) error {
	return errLockUnsupported
}

func unlockFile(_ *os.File) error {
	return nil
}

func isWouldBlock(error) bool {
	return false
}
