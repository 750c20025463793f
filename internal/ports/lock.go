package ports

import "xsysroot/internal/types"

// Guard is a held advisory lock. Release is idempotent.
type Guard interface {
	Release() error
	Path() string
	Subject() string
	Mode() types.LockMode
}

// Locker acquires reader/writer locks on a sentinel file path, creating
// the file and its parent directories when needed. Both calls block until
// the requested mode can be granted. subject names the locked resource in
// diagnostics.
type Locker interface {
	AcquireShared(path string, subject string) (Guard, error)
	AcquireExclusive(path string, subject string) (Guard, error)
}
